package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestActiveSlotIndex(t *testing.T) {
	gdb := dbtest.New(t)

	client := models.Client{Name: "Ana", Phone: "+55-34-99999-0000"}
	require.NoError(t, gdb.Create(&client).Error)

	first := models.Appointment{ClientID: client.ID, ServiceName: "Corte", Date: "2024-06-01", Time: "09:00", Status: "Pending"}
	require.NoError(t, gdb.Create(&first).Error)

	t.Run("SecondActiveRejected", func(t *testing.T) {
		dup := models.Appointment{ClientID: client.ID, ServiceName: "Barba", Date: "2024-06-01", Time: "09:00", Status: "Scheduled"}
		err := gdb.Create(&dup).Error
		require.Error(t, err)
		assert.True(t, apperr.IsUniqueViolation(err))
	})

	t.Run("InactiveAllowed", func(t *testing.T) {
		cancelled := models.Appointment{ClientID: client.ID, ServiceName: "Barba", Date: "2024-06-01", Time: "09:00", Status: "Cancelled"}
		assert.NoError(t, gdb.Create(&cancelled).Error)
	})

	t.Run("OtherSlotAllowed", func(t *testing.T) {
		other := models.Appointment{ClientID: client.ID, ServiceName: "Barba", Date: "2024-06-01", Time: "09:30", Status: "Pending"}
		assert.NoError(t, gdb.Create(&other).Error)
	})
}

func TestUniqueEmailAndPhone(t *testing.T) {
	gdb := dbtest.New(t)

	require.NoError(t, gdb.Create(&models.User{Name: "A", Email: "a@b.com", PasswordHash: "x"}).Error)
	err := gdb.Create(&models.User{Name: "B", Email: "a@b.com", PasswordHash: "y"}).Error
	assert.True(t, apperr.IsUniqueViolation(err))

	require.NoError(t, gdb.Create(&models.Client{Name: "A", Phone: "123"}).Error)
	err = gdb.Create(&models.Client{Name: "B", Phone: "123"}).Error
	assert.True(t, apperr.IsUniqueViolation(err))
}

func TestLoadCatalog(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		services, err := dbpkg.LoadCatalog("")
		require.NoError(t, err)
		require.Len(t, services, 3)
		assert.Equal(t, "Corte", services[0].Name)
		assert.Equal(t, 25.0, services[0].Price)
		assert.Equal(t, 60, services[2].DurationMin)
		assert.True(t, services[0].Active)
	})

	t.Run("CustomFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "services.yaml")
		require.NoError(t, os.WriteFile(path, []byte("services:\n  - name: Sobrancelha\n    price: 10\n    duration_min: 15\n"), 0o644))

		services, err := dbpkg.LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "Sobrancelha", services[0].Name)
	})

	t.Run("Duplicate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "services.yaml")
		require.NoError(t, os.WriteFile(path, []byte("services:\n  - name: Corte\n  - name: corte\n"), 0o644))

		_, err := dbpkg.LoadCatalog(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := dbpkg.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestSeedServicesIdempotent(t *testing.T) {
	gdb := dbtest.New(t)

	services, err := dbpkg.LoadCatalog("")
	require.NoError(t, err)
	require.NoError(t, dbpkg.SeedServices(gdb, services))

	var count int64
	require.NoError(t, gdb.Model(&models.Service{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "x.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", dbpkg.SQLiteDSN("x.db"))
	assert.Equal(t, "x.db?mode=ro", dbpkg.SQLiteDSN("x.db?mode=ro"))
}

package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestLoggerList(t *testing.T) {
	gdb := dbtest.New(t)
	l := New(gdb)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := []models.AuditLog{
		{Action: ActionAppointmentCreated, Entity: "appointment", CreatedAt: base},
		{Action: ActionAppointmentCreated, Entity: "appointment", CreatedAt: base.Add(time.Hour)},
		{Action: ActionUserRegistered, Entity: "user", CreatedAt: base.Add(24 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, gdb.Create(&rows[i]).Error)
	}

	t.Run("All", func(t *testing.T) {
		logs, total, err := l.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, logs, 3)
		assert.Equal(t, ActionUserRegistered, logs[0].Action)
	})

	t.Run("ByAction", func(t *testing.T) {
		logs, total, err := l.List(ctx, Filter{Action: ActionAppointmentCreated})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, logs, 2)
	})

	t.Run("DateRange", func(t *testing.T) {
		logs, total, err := l.List(ctx, Filter{From: base, To: base.Add(2 * time.Hour)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, logs, 2)
	})

	t.Run("Paged", func(t *testing.T) {
		logs, total, err := l.List(ctx, Filter{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, logs, 1)
		assert.Equal(t, rows[0].ID, logs[0].ID)
	})
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{Page: -1, Limit: 1000}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 50, f.Limit)
}

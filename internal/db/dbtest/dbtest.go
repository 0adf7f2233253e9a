package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
)

// New abre um sqlite em arquivo temporário com o schema completo e o catálogo padrão.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          filepath.Join(t.TempDir(), "barbearia.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	}

	gdb, err := dbpkg.NewDB(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = dbpkg.Close(gdb) })

	services, err := dbpkg.LoadCatalog("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if err := dbpkg.SeedServices(gdb, services); err != nil {
		t.Fatalf("seed services: %v", err)
	}

	return gdb
}

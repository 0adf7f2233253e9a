package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Índice único parcial: no máximo um agendamento ativo por (date, time).
// Funciona igual em postgres e sqlite.
const activeSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
	ON appointments (date, time)
	WHERE status IN ('Pending', 'Scheduled')
`

func NewDB(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.Driver).Msg("database ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.GalleryImage{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("failed to create active slot index: %w", err)
	}

	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.URL), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.URL)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteDSN liga foreign keys, busy timeout e transações IMMEDIATE quando
// o DSN não traz parâmetros próprios.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
}

package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"sportmatch/internal/model"
)

// MemoryDSN opens a private in-memory SQLite database with foreign keys enforced.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Open returns a connected GORM DB instance. URLs starting with postgres:// or
// postgresql:// use the Postgres driver, file: DSNs use SQLite, and anything
// else is treated as a MySQL DSN.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Surface unique index violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
	}
	if debug {
		gormConfig.Logger = gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
	}

	dialector, name := dialectorFor(dsn)
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", name, err)
	}
	if name == "sqlite" {
		// every connection to file::memory: opens a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("connect %s: %w", name, err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func dialectorFor(dsn string) (gorm.Dialector, string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn), "postgres"
	}
	if strings.HasPrefix(dsn, "file:") {
		return sqlite.Open(dsn), "sqlite"
	}
	return mysql.Open(dsn), "mysql"
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Sport{},
		&model.Facility{},
		&model.Activity{},
		&model.Match{},
		&model.Booking{},
	}
}

// Migrate creates or updates the schema. When reset is set all tables are
// dropped first, dependents before the tables they reference.
func Migrate(db *gorm.DB, reset bool) error {
	models := Models()
	if reset {
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

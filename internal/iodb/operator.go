// Package iodb implements database operations for PostgreSQL (pgxpool)
// and SQLite (modernc). This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"strings"

	"github.com/pdbbrowser/pdbdb/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewOperator creates a database operator (without connecting) for
// the given driver.
func NewOperator(driver string) (db.Operator, error) {
	switch strings.ToLower(driver) {
	case "postgres":
		return NewPgxOperator(), nil
	case "sqlite":
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}

// gormConfig keeps GORM quiet, the application logs through slog.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
}

package iodb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	msqlite "modernc.org/sqlite"
)

// SQLiteLower is a Unicode-aware LOWER for SQLite connections. The
// built-in LOWER folds ASCII letters only.
const SQLiteLower = "pdb_lower"

func init() {
	err := msqlite.RegisterDeterministicScalarFunction(
		SQLiteLower, 1, unicodeLower,
	)
	if err != nil {
		panic(err)
	}
}

func unicodeLower(
	_ *msqlite.FunctionContext,
	args []driver.Value,
) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// sqliteOperator implements db.Operator for a single SQLite file
// using the pure Go modernc driver.
type sqliteOperator struct {
	path   string
	gormDB *gorm.DB
}

// NewSQLiteOperator creates a new SQLite operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// SQLiteDSN returns a modernc DSN for the file with foreign keys
// enforced on every connection.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Connect opens the SQLite file given in cfg.Path. The file is
// created when it does not exist.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	if cfg.Path == "" {
		return SQLiteOpenError(cfg.Path, errors.New("empty database path"))
	}

	sqlDB, err := sql.Open("sqlite", SQLiteDSN(cfg.Path))
	if err != nil {
		return SQLiteOpenError(cfg.Path, err)
	}
	// SQLite allows one writer; a single connection also keeps
	// connection-scoped pragmas consistent.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return SQLiteOpenError(cfg.Path, err)
	}

	gormDB, err := gorm.Open(
		sqlite.New(sqlite.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		_ = sqlDB.Close()
		return SQLiteOpenError(cfg.Path, err)
	}

	s.path = cfg.Path
	s.gormDB = gormDB
	return nil
}

func (s *sqliteOperator) Close() error {
	if s.gormDB == nil {
		return nil
	}
	sqlDB, err := s.gormDB.DB()
	s.gormDB = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *sqliteOperator) Driver() string {
	return "sqlite"
}

func (s *sqliteOperator) GORM() *gorm.DB {
	return s.gormDB
}

// Pool is not available for SQLite.
func (s *sqliteOperator) Pool() *pgxpool.Pool {
	return nil
}

func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.gormDB == nil {
		return false, NotConnectedError()
	}

	var num int64
	err := s.gormDB.WithContext(ctx).Raw(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		tableName,
	).Scan(&num).Error
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return num > 0, nil
}

func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	tables, err := s.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops every user table. Foreign keys are switched off
// for the duration so that the drop order does not matter.
func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	tables, err := s.tables(ctx)
	if err != nil {
		return QueryTablesError(err)
	}

	gdb := s.gormDB.WithContext(ctx)
	if err := gdb.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return DropTableError("*", err)
	}
	defer gdb.Exec("PRAGMA foreign_keys = ON")

	for _, table := range tables {
		if err := gdb.Migrator().DropTable(table); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

func (s *sqliteOperator) tables(ctx context.Context) ([]string, error) {
	if s.gormDB == nil {
		return nil, NotConnectedError()
	}
	var tables []string
	err := s.gormDB.WithContext(ctx).Raw(
		"SELECT name FROM sqlite_master " +
			"WHERE type = 'table' AND name NOT LIKE 'sqlite_%' " +
			"ORDER BY name",
	).Scan(&tables).Error
	return tables, err
}

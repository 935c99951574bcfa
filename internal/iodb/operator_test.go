package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pdbbrowser/pdbdb/internal/iodb"
	"github.com/pdbbrowser/pdbdb/internal/iotesting"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: PostgreSQL tests are integration tests.
//
// Configuration comes from defaults overridden by environment:
//   export PDBDB_DATABASE_USER=your_user
//   export PDBDB_DATABASE_PASSWORD=your_password
//   # Database name is always forced to "pdb_test" for safety
//
// With Docker:
//   docker run -d --name pdb-test -e POSTGRES_PASSWORD=postgres \
//     -e POSTGRES_DB=pdb_test -p 5432:5432 postgres:16
//
// They are skipped with go test -short. SQLite tests always run.

func sqliteConfig(t *testing.T) *config.DatabaseConfig {
	cfg := config.New().Database
	cfg.Driver = "sqlite"
	cfg.Path = filepath.Join(t.TempDir(), "op.sqlite")
	return &cfg
}

func TestSQLiteOperator_Connect(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "entries")
	assert.Error(t, err, "not connected")

	require.NoError(t, op.Connect(ctx, sqliteConfig(t)))
	defer op.Close()

	assert.NotNil(t, op.GORM())
	assert.Nil(t, op.Pool())

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteOperator_EmptyPath(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	cfg := sqliteConfig(t)
	cfg.Path = ""
	assert.Error(t, op.Connect(context.Background(), cfg))
}

func TestSQLiteOperator_ForeignKeys(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	ctx := context.Background()
	require.NoError(t, op.Connect(ctx, sqliteConfig(t)))
	defer op.Close()

	var on int
	err := op.GORM().Raw("PRAGMA foreign_keys").Scan(&on).Error
	require.NoError(t, err)
	assert.Equal(t, 1, on)
}

func TestSQLiteOperator_DropAllTables(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	ctx := context.Background()
	require.NoError(t, op.Connect(ctx, sqliteConfig(t)))
	defer op.Close()

	gdb := op.GORM()
	require.NoError(t, gdb.Exec(
		"CREATE TABLE parent (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, gdb.Exec(
		"CREATE TABLE child (id INTEGER PRIMARY KEY, "+
			"parent_id INTEGER REFERENCES parent(id))").Error)
	require.NoError(t, gdb.Exec("INSERT INTO parent VALUES (1)").Error)
	require.NoError(t, gdb.Exec("INSERT INTO child VALUES (1, 1)").Error)

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, op.DropAllTables(ctx))

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	defer op.Close()

	assert.NotNil(t, op.Pool())
	assert.NotNil(t, op.GORM())

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err, "Should be able to execute commands after Connect")
	assert.False(t, exists)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(ctx, cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}

func TestPgxOperator_DropAllTables(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	if err := op.Connect(ctx, iotesting.GetTestDatabaseConfig()); err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	defer op.Close()

	_, _ = op.Pool().Exec(ctx, "CREATE TABLE IF NOT EXISTS drop_test1 (id SERIAL PRIMARY KEY)")
	_, _ = op.Pool().Exec(ctx, "CREATE TABLE IF NOT EXISTS drop_test2 (id SERIAL PRIMARY KEY)")

	exists, err := op.TableExists(ctx, "drop_test1")
	require.NoError(t, err)
	assert.True(t, exists)

	err = op.DropAllTables(ctx)
	require.NoError(t, err)

	exists1, _ := op.TableExists(ctx, "drop_test1")
	exists2, _ := op.TableExists(ctx, "drop_test2")
	assert.False(t, exists1, "drop_test1 should be dropped")
	assert.False(t, exists2, "drop_test2 should be dropped")
}

func TestSQLiteOperator_UnicodeLower(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(context.Background(), sqliteConfig(t)))
	defer op.Close()

	var builtin, folded string
	err := op.GORM().Raw("SELECT LOWER(?), "+iodb.SQLiteLower+"(?)",
		"ÉMILE Å", "ÉMILE Å").Row().Scan(&builtin, &folded)
	require.NoError(t, err)
	assert.Equal(t, "Émile Å", builtin, "built-in LOWER folds ASCII only")
	assert.Equal(t, "émile å", folded)

	var null *string
	err = op.GORM().Raw("SELECT " + iodb.SQLiteLower + "(NULL)").Row().Scan(&null)
	require.NoError(t, err)
	assert.Nil(t, null)
}

package database

import (
	"context"
	"path/filepath"
	"testing"

	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsTable_DerivedFromEntSchema(t *testing.T) {
	assert.Equal(t, "kanban_slots", SlotsTable.Name)
	require.Len(t, SlotsTable.Columns, 3)

	assert.Equal(t, SlotsColumnName, SlotsColumns[0].Name)
	assert.Equal(t, field.TypeString, SlotsColumns[0].Type)
	assert.Equal(t, int64(255), SlotsColumns[0].Size)

	assert.Equal(t, SlotsColumnDocument, SlotsColumns[1].Name)
	assert.Equal(t, field.TypeString, SlotsColumns[1].Type)

	assert.Equal(t, SlotsColumnUpdatedAt, SlotsColumns[2].Name)
	assert.Equal(t, field.TypeTime, SlotsColumns[2].Type)

	require.Len(t, SlotsTable.PrimaryKey, 1)
	assert.Equal(t, SlotsColumnName, SlotsTable.PrimaryKey[0].Name)
}

func TestConfig_DSN(t *testing.T) {
	pg := Config{Driver: DriverPostgres, Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "kanban", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=kanban sslmode=disable", pg.DSN())

	lite := Config{Driver: DriverSQLite, SQLitePath: "/tmp/k.db"}
	assert.Equal(t, "file:/tmp/k.db?_fk=1&_busy_timeout=5000", lite.DSN())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Config{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Open(Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "kanban.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, Migrate(context.Background(), db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM kanban_slots"))
	assert.Equal(t, 0, count)
}

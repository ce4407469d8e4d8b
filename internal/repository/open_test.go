package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/kanban/internal/config"
	"github.com/gurkanbulca/kanban/internal/models"
)

func TestOpenSlot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanban.json")
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendFile, FilePath: path}}

	slot, err := OpenSlot(context.Background(), cfg)
	require.NoError(t, err)
	defer slot.Close()

	fs, ok := slot.(*FileSlot)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}

func TestOpenSlot_SQLiteMigratesAndRoundTrips(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Backend:     config.BackendSQLite,
		Key:         "kanbanState",
		SQLitePath:  filepath.Join(t.TempDir(), "kanban.db"),
		AutoMigrate: true,
	}}

	slot, err := OpenSlot(context.Background(), cfg)
	require.NoError(t, err)
	defer slot.Close()

	require.NoError(t, Save(context.Background(), slot, models.DefaultCollection()))
	data, err := slot.Read(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[],"labels":["Bug","Feature","Enhancement","Documentation"]}`, string(data))
}

func TestOpenSlot_UnknownBackend(t *testing.T) {
	_, err := OpenSlot(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: "tape"}})
	assert.ErrorContains(t, err, "unknown storage backend")
}

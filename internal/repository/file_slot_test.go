package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_ReadMissing(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "missing.json"))
	_, err := slot.Read(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestFileSlot_ReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileSlot(path).Read(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestFileSlot_WriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "board.json")
	slot := NewFileSlot(path)
	ctx := context.Background()

	require.NoError(t, slot.Write(ctx, []byte(`{"first":true}`)))
	require.NoError(t, slot.Write(ctx, []byte(`{"second":true}`)))

	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"second":true}`, string(data))

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileSlot_CanceledContext(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "board.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, slot.Write(ctx, []byte("{}")), context.Canceled)
	_, err := slot.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

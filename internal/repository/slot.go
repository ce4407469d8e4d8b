// internal/repository/slot.go
package repository

import (
	"context"
	"errors"
)

// DefaultSlotKey is the name the board document is stored under.
const DefaultSlotKey = "kanbanState"

// ErrSlotEmpty is returned by Slot.Read when nothing has been stored yet.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is one named durable value holding the serialized board.
type Slot interface {
	// Read returns the stored document or ErrSlotEmpty.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored document.
	Write(ctx context.Context, data []byte) error
	Close() error
}

// internal/repository/persistence.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gurkanbulca/kanban/internal/models"
)

// Encode serializes the collection into the slot document format.
func Encode(c *models.Collection) ([]byte, error) {
	doc := c.Clone()
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return data, nil
}

// ErrNotCollection is returned by Decode for well-formed JSON that is not a
// collection document, such as null or an object without both keys.
var ErrNotCollection = errors.New("document is not a collection")

// document mirrors models.Collection with pointers so that a missing or
// null key can be told apart from an empty list.
type document struct {
	Tasks  *[]models.Task `json:"tasks"`
	Labels *[]string      `json:"labels"`
}

// Decode parses a slot document and checks the collection invariants.
func Decode(data []byte) (*models.Collection, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if doc.Tasks == nil || doc.Labels == nil {
		return nil, fmt.Errorf("decode collection: %w", ErrNotCollection)
	}

	c := models.Collection{Tasks: *doc.Tasks, Labels: *doc.Labels}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collection: %w", err)
	}
	return &c, nil
}

// Load restores the board from the slot. A missing, unreadable or malformed
// document yields the default collection; Load never fails.
func Load(ctx context.Context, slot Slot, logger zerolog.Logger) *models.Collection {
	data, err := slot.Read(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		logger.Info().Msg("No saved board found, starting with default collection")
		return models.DefaultCollection()
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read saved board, starting with default collection")
		return models.DefaultCollection()
	}

	c, err := Decode(data)
	if err != nil {
		logger.Warn().Err(err).Msg("Saved board is corrupt, starting with default collection")
		return models.DefaultCollection()
	}

	logger.Info().
		Int("tasks", len(c.Tasks)).
		Int("labels", len(c.Labels)).
		Msg("Loaded saved board")
	return c
}

// Save serializes the whole collection and overwrites the slot.
func Save(ctx context.Context, slot Slot, c *models.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := slot.Write(ctx, data); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// internal/repository/sql_slot.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"

	"github.com/gurkanbulca/kanban/internal/database"
)

// SQLSlot keeps the document in one row of the kanban_slots table, keyed
// by slot name. Statements are built with ent's SQL builder so the same code
// emits postgres ($1, "ident") or sqlite (?, `ident`) syntax.
type SQLSlot struct {
	db      *sqlx.DB
	dialect string
	key     string
	now     func() time.Time
}

// NewSQLSlot returns a slot over an opened database. The dialect is taken
// from the driver name the database was opened with.
func NewSQLSlot(db *sqlx.DB, key string) (*SQLSlot, error) {
	dialect, err := database.DialectOf(db.DriverName())
	if err != nil {
		return nil, err
	}
	if key == "" {
		key = DefaultSlotKey
	}
	return &SQLSlot{
		db:      db,
		dialect: dialect,
		key:     key,
		now:     time.Now,
	}, nil
}

func (s *SQLSlot) Read(ctx context.Context) ([]byte, error) {
	query, args := entsql.Dialect(s.dialect).
		Select(database.SlotsColumnDocument).
		From(entsql.Table(database.SlotsTableName)).
		Where(entsql.EQ(database.SlotsColumnName, s.key)).
		Query()

	var document string
	if err := s.db.GetContext(ctx, &document, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("query slot %q: %w", s.key, err)
	}
	if document == "" {
		return nil, ErrSlotEmpty
	}
	return []byte(document), nil
}

func (s *SQLSlot) Write(ctx context.Context, data []byte) error {
	query, args := entsql.Dialect(s.dialect).
		Insert(database.SlotsTableName).
		Columns(database.SlotsColumnName, database.SlotsColumnDocument, database.SlotsColumnUpdatedAt).
		Values(s.key, string(data), s.now().UTC()).
		OnConflict(
			entsql.ConflictColumns(database.SlotsColumnName),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert slot %q: %w", s.key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLSlot) Close() error {
	return s.db.Close()
}

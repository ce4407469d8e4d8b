// internal/database/schema.go
package database

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	entgo "entgo.io/ent/schema"

	entschema "github.com/gurkanbulca/kanban/ent/schema"
)

// Slot table columns. They match the storage keys of the KanbanSlot ent
// schema.
const (
	SlotsColumnName      = "slot"
	SlotsColumnDocument  = "document"
	SlotsColumnUpdatedAt = "updated_at"
)

// SlotsTableName is taken from the KanbanSlot entsql annotation.
var SlotsTableName = tableName(entschema.KanbanSlot{}, "kanban_slots")

var (
	// SlotsColumns holds the columns for the "kanban_slots" table.
	SlotsColumns = columnsOf(entschema.KanbanSlot{}.Fields())
	// SlotsTable holds the schema information for the "kanban_slots" table.
	SlotsTable = &schema.Table{
		Name:       SlotsTableName,
		Columns:    SlotsColumns,
		PrimaryKey: []*schema.Column{SlotsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SlotsTable,
	}
)

// columnsOf converts ent field descriptors to migrator columns. The first
// field is the primary key.
func columnsOf(fields []ent.Field) []*schema.Column {
	cols := make([]*schema.Column, 0, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		name := d.Name
		if d.StorageKey != "" {
			name = d.StorageKey
		}
		cols = append(cols, &schema.Column{
			Name:     name,
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Nullable: d.Optional,
		})
	}
	return cols
}

type annotated interface {
	Annotations() []entgo.Annotation
}

func tableName(s annotated, fallback string) string {
	for _, a := range s.Annotations() {
		if ann, ok := a.(entsql.Annotation); ok && ann.Table != "" {
			return ann.Table
		}
	}
	return fallback
}

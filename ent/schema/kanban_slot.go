// ent/schema/kanban_slot.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KanbanSlot holds the schema definition for one persisted board document.
type KanbanSlot struct {
	ent.Schema
}

// Fields of the KanbanSlot.
func (KanbanSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("slot").
			MaxLen(255).
			NotEmpty().
			Immutable().
			Comment("Slot key, kanbanState unless configured otherwise"),

		field.Text("document").
			Comment("The whole collection as a JSON document"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the document was last written"),
	}
}

// Annotations of the KanbanSlot.
func (KanbanSlot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "kanban_slots"},
	}
}

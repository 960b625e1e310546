package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPackage holds the schema definition for the AgentPackage entity — a
// registered external capability that discover_tools can surface. Similarity
// ranking lives in the external discovery service; this table is the source
// of record the service indexes.
type AgentPackage struct {
	ent.Schema
}

// Fields of the AgentPackage.
func (AgentPackage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description"),
		field.String("package_name").
			Unique().
			Comment("pip-installable name, ^[a-z0-9_-]+$"),
		field.String("version").
			Default("latest"),
		field.Bool("verified").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentPackage.
func (AgentPackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("package_name"),
		index.Fields("verified"),
	}
}

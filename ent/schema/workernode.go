package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkerNode holds the schema definition for the WorkerNode entity — a worker
// runtime registration, upserted on every heartbeat. Liveness (healthy /
// warning / dead) is derived from last_heartbeat at read time, never stored.
type WorkerNode struct {
	ent.Schema
}

// Fields of the WorkerNode.
func (WorkerNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("worker_id").
			Unique().
			Immutable().
			Comment("hostname-pid"),
		field.String("hostname"),
		field.String("version"),
		field.Enum("status").
			Values("active", "draining", "dead").
			Default("active"),
		field.Int("active_jobs").
			Default(0),
		field.Time("last_heartbeat").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkerNode.
func (WorkerNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_heartbeat"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobLog holds the schema definition for the JobLog entity — an append-only
// per-job log stream.
type JobLog struct {
	ent.Schema
}

// Fields of the JobLog.
func (JobLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Monotonic within a job"),
		field.Enum("level").
			Values("debug", "info", "warn", "error").
			Default("info").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobLog.
func (JobLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("logs").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobLog.
func (JobLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "sequence_number"),
	}
}

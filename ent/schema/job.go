package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Text("task").
			Immutable().
			Comment("Natural-language task submitted by the caller"),
		field.String("api_key_id").
			Immutable().
			Comment("Owning credential"),
		field.Int("priority").
			Default(0).
			Immutable().
			Comment("0..100, higher claims first"),
		field.Int("timeout_seconds").
			Default(300).
			Immutable().
			Comment("30..3600, bounds the whole execution"),
		field.String("model").
			Immutable().
			Comment("Chat-provider model identifier"),
		field.Enum("hitl_mode").
			Values("plan_approval", "auto_execute", "always_ask").
			Default("plan_approval").
			Immutable(),
		field.Int("max_retries").
			Default(3).
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "waiting_for_user", "completed", "failed", "cancelled").
			Default("queued"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Set while running; cleared on release"),
		field.JSON("tools_discovered", []string{}).
			Optional(),
		field.JSON("execution_state", json.RawMessage{}).
			Optional().
			Comment("Opaque checkpoint blob owned by the agent loop"),
		field.Text("result").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Text("agent_question").
			Optional().
			Nillable().
			Comment("Question posed via ask_user while waiting_for_user"),
		field.Text("user_answer").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("paused_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("logs", JobLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", JobArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attachments", JobAttachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("api_key_id"),
		index.Fields("worker_id"),

		// Claim ordering: priority DESC, created_at ASC over queued rows.
		index.Fields("status", "priority", "created_at"),
		// Stale-lease scans: running rows by started_at.
		index.Fields("status", "started_at"),
	}
}

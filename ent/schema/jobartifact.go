package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobArtifact holds the schema definition for the JobArtifact entity — a file
// produced by a job and persisted to the object store.
type JobArtifact struct {
	ent.Schema
}

// Fields of the JobArtifact.
func (JobArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("filename").
			Immutable(),
		field.String("mime_type").
			Immutable(),
		field.String("storage_path").
			Immutable(),
		field.String("public_url").
			Immutable(),
		field.Int64("size_bytes").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobArtifact.
func (JobArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("artifacts").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobArtifact.
func (JobArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
	}
}

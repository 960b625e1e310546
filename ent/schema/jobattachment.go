package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobAttachment holds the schema definition for the JobAttachment entity — an
// input file supplied by the submitter. Distinct from JobArtifact, which the
// job produces.
type JobAttachment struct {
	ent.Schema
}

// Fields of the JobAttachment.
func (JobAttachment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attachment_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Optional().
			Comment("Empty until the upload is bound to a job"),
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

// Edges of the JobAttachment.
func (JobAttachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("attachments").
			Field("job_id").
			Unique(),
	}
}

// Indexes of the JobAttachment.
func (JobAttachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
	}
}

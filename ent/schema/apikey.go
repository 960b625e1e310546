package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity. The raw key value
// is never stored — only its SHA-256 digest and a short display prefix.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("owner_email").
			Optional().
			Nillable(),
		field.String("key_hash").
			Unique().
			Immutable().
			Comment("Hex SHA-256 of the raw key"),
		field.String("key_prefix").
			MaxLen(14).
			Immutable().
			Comment("Display prefix, e.g. engine_live_AB"),
		field.JSON("scopes", []string{}),
		field.Int("rate_limit_rpm").
			Default(60),
		field.Bool("is_active").
			Default(true),
		field.Time("revoked_at").
			Optional().
			Nillable(),
		field.String("revoked_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Int64("total_requests").
			Default(0),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_hash"),
		index.Fields("is_active"),
	}
}

// Package auth implements the credential store: issuing, validating, and
// revoking bearer API keys, plus scope checks.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/apikey"
	"github.com/Mootbing/angine/pkg/config"
)

// Service manages API key lifecycle and validation.
type Service struct {
	client *ent.Client
	env    config.Environment
	logger *slog.Logger
}

// NewService creates a new credential store service.
func NewService(client *ent.Client, env config.Environment) *Service {
	return &Service{
		client: client,
		env:    env,
		logger: slog.Default().With("component", "auth"),
	}
}

// IssueInput carries parameters for issuing a new key.
type IssueInput struct {
	Name       string
	OwnerEmail string
	Scopes     []Scope
	RPMLimit   int
}

// Credential is the validated identity attached to an admitted request.
type Credential struct {
	ID       string
	Scopes   []Scope
	RPMLimit int
}

// Issue generates a new API key and returns the raw value exactly once.
// The store keeps only the SHA-256 digest and a short display prefix.
func (s *Service) Issue(ctx context.Context, input IssueInput) (string, *ent.APIKey, error) {
	if input.Name == "" {
		return "", nil, NewValidationError("name", "required")
	}
	scopes := input.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	for _, sc := range scopes {
		if !ValidScope(sc) {
			return "", nil, NewValidationError("scopes", fmt.Sprintf("unknown scope %q", sc))
		}
	}
	rpm := input.RPMLimit
	if rpm <= 0 {
		rpm = 60
	}

	// Digest collision is astronomically unlikely; retry once per the
	// uniqueness contract, then give up.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		raw, hash, prefix, err := generateKey(s.env)
		if err != nil {
			return "", nil, err
		}

		builder := s.client.APIKey.Create().
			SetID(uuid.New().String()).
			SetName(input.Name).
			SetKeyHash(hash).
			SetKeyPrefix(prefix).
			SetScopes(scopes).
			SetRateLimitRpm(rpm)
		if input.OwnerEmail != "" {
			builder.SetOwnerEmail(input.OwnerEmail)
		}

		rec, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				lastErr = err
				continue
			}
			return "", nil, fmt.Errorf("failed to create API key: %w", err)
		}
		return raw, rec, nil
	}
	return "", nil, fmt.Errorf("failed to create API key after retry: %w", lastErr)
}

// Validate checks a raw bearer key and returns the credential on success.
// Unknown, revoked, and malformed keys all surface as ErrInvalidKey so the
// caller cannot distinguish them.
func (s *Service) Validate(ctx context.Context, rawKey string) (*Credential, error) {
	if !hasKeyPrefix(rawKey, s.env) {
		return nil, ErrInvalidKey
	}

	rec, err := s.client.APIKey.Query().
		Where(apikey.KeyHashEQ(hashKey(rawKey))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidKey
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if !rec.IsActive {
		return nil, ErrInvalidKey
	}

	// Usage accounting is fire-and-forget; it must never block admission.
	go s.recordUsage(rec.ID)

	return &Credential{
		ID:       rec.ID,
		Scopes:   rec.Scopes,
		RPMLimit: rec.RateLimitRpm,
	}, nil
}

// recordUsage bumps total_requests and last_used_at in the background.
func (s *Service) recordUsage(keyID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.APIKey.UpdateOneID(keyID).
		AddTotalRequests(1).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to record API key usage", "key_id", keyID, "error", err)
	}
}

// Revoke marks a key inactive. Idempotent: revoking an already-revoked key
// succeeds without changing the original revocation record.
func (s *Service) Revoke(ctx context.Context, keyID, reason string) error {
	rec, err := s.client.APIKey.Get(ctx, keyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load API key: %w", err)
	}
	if !rec.IsActive {
		return nil
	}

	update := s.client.APIKey.UpdateOneID(keyID).
		SetIsActive(false).
		SetRevokedAt(time.Now())
	if reason != "" {
		update.SetRevokedReason(reason)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke API key: %w", err)
	}

	s.logger.Info("API key revoked", "key_id", keyID, "reason", reason)
	return nil
}

// ListParams filters List.
type ListParams struct {
	Limit      int
	Offset     int
	ActiveOnly bool
}

// List returns key metadata. Raw keys and hashes are never included; the
// API layer serializes only display-safe fields.
func (s *Service) List(ctx context.Context, params ListParams) ([]*ent.APIKey, int, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	q := s.client.APIKey.Query()
	if params.ActiveOnly {
		q = q.Where(apikey.IsActive(true))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count API keys: %w", err)
	}

	keys, err := q.
		Order(ent.Desc(apikey.FieldCreatedAt)).
		Limit(limit).
		Offset(params.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list API keys: %w", err)
	}

	return keys, total, nil
}

// Get returns a single key's metadata by id.
func (s *Service) Get(ctx context.Context, keyID string) (*ent.APIKey, error) {
	rec, err := s.client.APIKey.Get(ctx, keyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load API key: %w", err)
	}
	return rec, nil
}

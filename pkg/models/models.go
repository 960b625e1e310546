// Package models defines the API-facing representations of engine entities.
package models

import (
	"time"

	"github.com/Mootbing/angine/ent"
)

// JobResponse is the API shape of a job.
type JobResponse struct {
	ID              string     `json:"id"`
	Task            string     `json:"task"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	TimeoutSeconds  int        `json:"timeout_seconds"`
	Model           string     `json:"model"`
	HITLMode        string     `json:"hitl_mode"`
	WorkerID        *string    `json:"worker_id,omitempty"`
	ToolsDiscovered []string   `json:"tools_discovered,omitempty"`
	Result          *string    `json:"result,omitempty"`
	Error           *string    `json:"error,omitempty"`
	AgentQuestion   *string    `json:"agent_question,omitempty"`
	RetryCount      int        `json:"retry_count"`
	MaxRetries      int        `json:"max_retries"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	PausedAt        *time.Time `json:"paused_at,omitempty"`
}

// NewJobResponse maps a job row. The execution_state blob and user_answer
// are engine-internal and never serialized.
func NewJobResponse(j *ent.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		Task:            j.Task,
		Status:          string(j.Status),
		Priority:        j.Priority,
		TimeoutSeconds:  j.TimeoutSeconds,
		Model:           j.Model,
		HITLMode:        string(j.HitlMode),
		WorkerID:        j.WorkerID,
		ToolsDiscovered: j.ToolsDiscovered,
		Result:          j.Result,
		Error:           j.ErrorMessage,
		AgentQuestion:   j.AgentQuestion,
		RetryCount:      j.RetryCount,
		MaxRetries:      j.MaxRetries,
		CreatedAt:       j.CreatedAt,
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		PausedAt:        j.PausedAt,
	}
}

// JobDetail is a job plus its artifacts.
type JobDetail struct {
	JobResponse
	Artifacts []ArtifactResponse `json:"artifacts"`
}

// ArtifactResponse is the API shape of a produced artifact.
type ArtifactResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mime_type"`
	PublicURL string    `json:"public_url"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewArtifactResponse maps an artifact row.
func NewArtifactResponse(a *ent.JobArtifact) ArtifactResponse {
	return ArtifactResponse{
		ID:        a.ID,
		Filename:  a.Filename,
		MimeType:  a.MimeType,
		PublicURL: a.PublicURL,
		SizeBytes: a.SizeBytes,
		CreatedAt: a.CreatedAt,
	}
}

// LogResponse is the API shape of a log entry.
type LogResponse struct {
	SequenceNumber int                    `json:"sequence_number"`
	Level          string                 `json:"level"`
	Message        string                 `json:"message"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// NewLogResponse maps a log row.
func NewLogResponse(l *ent.JobLog) LogResponse {
	return LogResponse{
		SequenceNumber: l.SequenceNumber,
		Level:          string(l.Level),
		Message:        l.Message,
		Metadata:       l.Metadata,
		CreatedAt:      l.CreatedAt,
	}
}

// UploadResponse is returned by POST /jobs/upload.
type UploadResponse struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}

// KeyResponse is the display-safe API shape of an API key: never the raw
// value, never the hash.
type KeyResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	OwnerEmail    *string    `json:"owner_email,omitempty"`
	KeyPrefix     string     `json:"key_prefix"`
	Scopes        []string   `json:"scopes"`
	RateLimitRPM  int        `json:"rate_limit_rpm"`
	IsActive      bool       `json:"is_active"`
	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
	RevokedReason *string    `json:"revoked_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty"`
	TotalRequests int64      `json:"total_requests"`
}

// NewKeyResponse maps a key row.
func NewKeyResponse(k *ent.APIKey) KeyResponse {
	return KeyResponse{
		ID:            k.ID,
		Name:          k.Name,
		OwnerEmail:    k.OwnerEmail,
		KeyPrefix:     k.KeyPrefix,
		Scopes:        k.Scopes,
		RateLimitRPM:  k.RateLimitRpm,
		IsActive:      k.IsActive,
		RevokedAt:     k.RevokedAt,
		RevokedReason: k.RevokedReason,
		CreatedAt:     k.CreatedAt,
		LastUsedAt:    k.LastUsedAt,
		TotalRequests: k.TotalRequests,
	}
}

// AgentResponse is the API shape of a registered agent package.
type AgentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PackageName string    `json:"package_name"`
	Version     string    `json:"version"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewAgentResponse maps an agent package row.
func NewAgentResponse(a *ent.AgentPackage) AgentResponse {
	return AgentResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		PackageName: a.PackageName,
		Version:     a.Version,
		Verified:    a.Verified,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// WorkerResponse is the API shape of a worker registration with derived health.
type WorkerResponse struct {
	ID            string    `json:"id"`
	Hostname      string    `json:"hostname"`
	Version       string    `json:"version"`
	Status        string    `json:"status"`
	Health        string    `json:"health"`
	ActiveJobs    int       `json:"active_jobs"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

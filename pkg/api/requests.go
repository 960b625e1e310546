package api

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	echo "github.com/labstack/echo/v5"
)

// Request validation limits.
const (
	maxTaskLen        = 10000
	maxUploadBytes    = 10 << 20 // 10 MiB
	defaultTimeout    = 300
	defaultThreshold  = 0.7
	defaultDiscoLimit = 10
)

// packageNamePattern validates agent package names.
var packageNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	Task           string   `json:"task" validate:"required,min=1,max=10000"`
	Priority       *int     `json:"priority" validate:"omitempty,min=0,max=100"`
	TimeoutSeconds *int     `json:"timeout_seconds" validate:"omitempty,min=30,max=3600"`
	Model          string   `json:"model"`
	HITLMode       string   `json:"hitl_mode" validate:"omitempty,oneof=plan_approval auto_execute always_ask"`
	Attachments    []string `json:"attachments" validate:"omitempty,max=20"`
}

// RespondRequest is the body of POST /api/v1/jobs/:id/respond.
type RespondRequest struct {
	Answer     string `json:"answer" validate:"required,min=1,max=10000"`
	Action     string `json:"action" validate:"omitempty,oneof=approve reject edit respond"`
	EditedPlan string `json:"editedPlan" validate:"omitempty,max=10000"`
}

// CancelRequest is the optional body of DELETE /api/v1/jobs/:id.
type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// DiscoverRequest is the body of POST /api/v1/agents/discover.
type DiscoverRequest struct {
	Task      string   `json:"task" validate:"required,min=1,max=10000"`
	Threshold *float64 `json:"threshold" validate:"omitempty,min=0,max=1"`
	Limit     *int     `json:"limit" validate:"omitempty,min=1,max=20"`
}

// CreateAgentRequest is the body of POST /api/v1/agents.
type CreateAgentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	PackageName string `json:"package_name" validate:"required,min=1,max=200"`
	Version     string `json:"version" validate:"omitempty,max=50"`
}

// CreateKeyRequest is the body of POST /api/v1/admin/keys.
type CreateKeyRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	OwnerEmail   string   `json:"owner_email" validate:"omitempty,email"`
	Scopes       []string `json:"scopes" validate:"omitempty,max=10"`
	RateLimitRPM *int     `json:"rate_limit_rpm" validate:"omitempty,min=1,max=100000"`
}

// RevokeRequest is the optional body of DELETE /api/v1/admin/keys/:id.
type RevokeRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// bindAndValidate binds the JSON body and runs struct validation, mapping
// failures to 400 VALIDATION_ERROR.
func (s *Server) bindAndValidate(c *echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return newAPIError(http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return newAPIError(http.StatusBadRequest, CodeValidationError,
				"invalid field "+verrs[0].Field())
		}
		return newAPIError(http.StatusBadRequest, CodeValidationError, err.Error())
	}
	return nil
}

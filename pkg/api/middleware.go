package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/metrics"
)

// credentialKey is the context key the admission middleware stores the
// validated credential under.
const credentialKey = "credential"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// authenticate runs the admission pipeline for every protected endpoint:
// parse the bearer header, validate the credential, check the rate limit,
// check scopes. Any failing step terminates the request.
func (s *Server) authenticate(acceptable ...auth.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			rawKey, ok := parseBearer(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.RequestsTotal.WithLabelValues("unauthorized").Inc()
				return newAPIError(http.StatusUnauthorized, CodeUnauthorized,
					"missing or malformed Authorization header")
			}

			cred, err := s.authService.Validate(c.Request().Context(), rawKey)
			if err != nil {
				metrics.RequestsTotal.WithLabelValues("unauthorized").Inc()
				return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "invalid API key")
			}

			result := s.limiter.Check(c.Request().Context(), cred.ID, cred.RPMLimit)
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cred.RPMLimit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if !result.Allowed {
				metrics.RequestsTotal.WithLabelValues("rate_limited").Inc()
				h.Set("Retry-After", strconv.Itoa(result.RetryAfterSeconds))
				return newAPIError(http.StatusTooManyRequests, CodeRateLimited,
					"rate limit exceeded")
			}

			if !auth.CheckScope(acceptable, cred.Scopes) {
				metrics.RequestsTotal.WithLabelValues("forbidden").Inc()
				return newAPIError(http.StatusForbidden, CodeForbidden,
					"credential lacks required scope")
			}

			metrics.RequestsTotal.WithLabelValues("ok").Inc()
			c.Set(credentialKey, cred)
			return next(c)
		}
	}
}

// credentialFrom returns the validated credential placed by authenticate.
func credentialFrom(c *echo.Context) *auth.Credential {
	cred, _ := c.Get(credentialKey).(*auth.Credential)
	return cred
}

// parseBearer extracts the token from an "Authorization: Bearer <token>" header.
func parseBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckScope(t *testing.T) {
	tests := []struct {
		name       string
		acceptable []Scope
		granted    []Scope
		want       bool
	}{
		{
			name:       "exact match",
			acceptable: []Scope{ScopeJobsRead},
			granted:    []Scope{ScopeJobsRead},
			want:       true,
		},
		{
			name:       "any-of semantics",
			acceptable: []Scope{ScopeJobsRead, ScopeJobsWrite},
			granted:    []Scope{ScopeJobsWrite},
			want:       true,
		},
		{
			name:       "missing scope",
			acceptable: []Scope{ScopeJobsDelete},
			granted:    []Scope{ScopeJobsRead, ScopeJobsWrite},
			want:       false,
		},
		{
			name:       "admin is universal",
			acceptable: []Scope{ScopeJobsDelete},
			granted:    []Scope{ScopeAdmin},
			want:       true,
		},
		{
			name:       "empty grant",
			acceptable: []Scope{ScopeJobsRead},
			granted:    nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckScope(tt.acceptable, tt.granted))
		})
	}
}

func TestHasScope(t *testing.T) {
	assert.True(t, HasScope(ScopeAdmin, []Scope{ScopeAdmin}))
	assert.True(t, HasScope(ScopeJobsRead, []Scope{ScopeAdmin}))
	assert.False(t, HasScope(ScopeAdmin, []Scope{ScopeJobsRead, ScopeJobsWrite}))
}

func TestValidScope(t *testing.T) {
	for _, s := range []Scope{ScopeJobsRead, ScopeJobsWrite, ScopeJobsDelete, ScopeAgentsRead, ScopeAgentsWrite, ScopeAdmin} {
		assert.True(t, ValidScope(s), s)
	}
	assert.False(t, ValidScope("jobs:execute"))
	assert.False(t, ValidScope(""))
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, status)

	env.db.err = errBoom
	status, body := env.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "database unavailable", body.Message)
}

func TestAdminStats_RoleGate(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	applicant, err := env.tokens.Issue(uuid.New(), "applicant")
	require.NoError(t, err)
	status, body := env.do(t, http.MethodGet, "/admin/stats", nil, applicant)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body.Message)

	admin, err := env.tokens.Issue(uuid.New(), "admin")
	require.NoError(t, err)
	status, body = env.do(t, http.MethodGet, "/admin/stats", nil, admin)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body.Data), `"total_applications":3`)
}

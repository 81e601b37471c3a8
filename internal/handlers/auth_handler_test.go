package handlers_test

import (
	"net/http"
	"testing"

	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, body := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"}, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["userId"])
	assert.Equal(t, "a@b.com", body["email"])
}

func TestRegisterDuplicate(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])
}

func TestRegisterMissingPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// The two failure modes must be byte-identical so login cannot be used to
// probe which emails are registered.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	unknownResp, unknownBody := postJSON(t, app, "/api/login",
		dto.LoginRequest{Email: "nobody@b.com", Password: "pw123456"}, nil)
	wrongResp, wrongBody := postJSON(t, app, "/api/login",
		dto.LoginRequest{Email: "a@b.com", Password: "wrong-pass"}, nil)

	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, unknownBody, wrongBody)
}

func TestLoginAndStatusRoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/login",
		dto.LoginRequest{Email: "a@b.com", Password: "pw123456"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// Fresh account, no cache row, no tier on file: defaults to free
	resp, status := getJSON(t, app, "/api/subscription/status",
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "free", status["tier"])
	assert.Equal(t, false, status["hasPremium"])
	assert.Equal(t, false, status["hasSuper"])
	assert.Equal(t, "users", status["source"])
}

func TestStatusRequiresBearerToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := getJSON(t, app, "/api/subscription/status", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = getJSON(t, app, "/api/subscription/status",
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

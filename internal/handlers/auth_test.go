package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupIssuesUsableToken(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"username": "fresh",
		"password": "freshpass123",
	})
	requireStatus(t, rec, http.StatusCreated)

	body := decodeBody(t, rec)
	assert.Equal(t, "fresh", body["username"])
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	rec = doRequest(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"text": "my first post",
	})
	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "fresh", decodeBody(t, rec)["author"])
}

func TestSignupDuplicateUsername(t *testing.T) {
	e, db := newTestAPI(t)
	seedUser(t, db, "taken")

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"username": "taken",
		"password": "whatever123",
	})
	requireStatus(t, rec, http.StatusConflict)
}

func TestSignupValidation(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"username": "ok",
		"password": "short",
	})
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSignin(t *testing.T) {
	e, db := newTestAPI(t)
	seedUser(t, db, "testuser") // password is testuser-pass-123

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/signin", "", map[string]interface{}{
		"username": "testuser",
		"password": "testuser-pass-123",
	})
	requireStatus(t, rec, http.StatusOK)
	require.NotEmpty(t, decodeBody(t, rec)["token"])

	rec = doRequest(e, http.MethodPost, "/api/v1/auth/signin", "", map[string]interface{}{
		"username": "testuser",
		"password": "wrong-password",
	})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestInvalidTokenRejected(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/posts", "not-a-token", nil)
	requireStatus(t, rec, http.StatusUnauthorized)
}

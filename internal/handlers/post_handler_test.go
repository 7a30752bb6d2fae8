package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPostsOpenToAnonymous(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	seedPost(t, db, author, "first post", nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/posts", "", nil)
	requireStatus(t, rec, http.StatusOK)

	count, results := decodePage(t, rec)
	assert.Equal(t, float64(1), count)
	require.Len(t, results, 1)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "first post", first["text"])
	assert.Equal(t, "testuser", first["author"])
}

func TestListPostsPagination(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	for i := 0; i < 3; i++ {
		seedPost(t, db, author, fmt.Sprintf("post %d", i), nil)
	}

	rec := doRequest(e, http.MethodGet, "/api/v1/posts?limit=2", "", nil)
	requireStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["count"])
	assert.Len(t, body["results"], 2)
	assert.NotNil(t, body["next"])
	assert.Nil(t, body["previous"])

	rec = doRequest(e, http.MethodGet, "/api/v1/posts?limit=2&offset=2", "", nil)
	requireStatus(t, rec, http.StatusOK)
	body = decodeBody(t, rec)
	assert.Len(t, body["results"], 1)
	assert.Nil(t, body["next"])
	assert.NotNil(t, body["previous"])
}

func TestGetPostDetail(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	group := seedGroup(t, db, "Test group", "test")
	post := seedPost(t, db, author, "a grouped post", &group.ID)

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", post.ID), "", nil)
	requireStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	assert.Equal(t, "a grouped post", body["text"])
	assert.Equal(t, "testuser", body["author"])
	assert.Equal(t, float64(group.ID), body["group"])
}

func TestGetPostNotFound(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/posts/999", "", nil)
	requireStatus(t, rec, http.StatusNotFound)

	// non-numeric ids can never name a post
	rec = doRequest(e, http.MethodGet, "/api/v1/posts/abc", "", nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestCreatePostAuthenticated(t *testing.T) {
	e, db := newTestAPI(t)
	_, token := seedUser(t, db, "testuser")

	rec := doRequest(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"text": "hello",
	})
	requireStatus(t, rec, http.StatusCreated)

	body := decodeBody(t, rec)
	assert.Equal(t, "hello", body["text"])
	assert.Equal(t, "testuser", body["author"])
	assert.Nil(t, body["group"])
}

func TestCreatePostAnonymous(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/posts", "", map[string]interface{}{
		"text": "hello",
	})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestCreatePostIgnoresAuthorInPayload(t *testing.T) {
	e, db := newTestAPI(t)
	seedUser(t, db, "someoneelse")
	_, token := seedUser(t, db, "testuser")

	rec := doRequest(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"text":   "hello",
		"author": "someoneelse",
	})
	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "testuser", decodeBody(t, rec)["author"])
}

func TestCreatePostValidation(t *testing.T) {
	e, db := newTestAPI(t)
	_, token := seedUser(t, db, "testuser")

	rec := doRequest(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"text": "",
	})
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	e, db := newTestAPI(t)
	_, token := seedUser(t, db, "testuser")

	unknown := uint(42)
	rec := doRequest(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"text":  "hello",
		"group": unknown,
	})
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateOwnPost(t *testing.T) {
	e, db := newTestAPI(t)
	author, token := seedUser(t, db, "testuser")
	post := seedPost(t, db, author, "hello", nil)

	rec := doRequest(e, http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d", post.ID), token, map[string]interface{}{
		"text": "hi",
	})
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "hi", decodeBody(t, rec)["text"])

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, "hi", stored.Text)
	assert.Equal(t, author.ID, stored.AuthorID)
}

func TestUpdateForeignPost(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	_, strangerToken := seedUser(t, db, "anotheruser")
	post := seedPost(t, db, author, "hello", nil)

	// repeating the attempt yields the same 403 and leaves the post alone
	for i := 0; i < 2; i++ {
		rec := doRequest(e, http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d", post.ID), strangerToken, map[string]interface{}{
			"text": "hijacked",
		})
		requireStatus(t, rec, http.StatusForbidden)

		var stored models.Post
		require.NoError(t, db.First(&stored, post.ID).Error)
		assert.Equal(t, "hello", stored.Text)
	}
}

func TestUpdateForeignPostForbiddenBeforeValidation(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	_, strangerToken := seedUser(t, db, "anotheruser")
	post := seedPost(t, db, author, "hello", nil)

	// the payload is invalid too; ownership is still the first answer
	rec := doRequest(e, http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d", post.ID), strangerToken, map[string]interface{}{
		"text": strings.Repeat("x", 3000),
	})
	requireStatus(t, rec, http.StatusForbidden)
}

func TestUpdatePostAnonymous(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	post := seedPost(t, db, author, "hello", nil)

	rec := doRequest(e, http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d", post.ID), "", map[string]interface{}{
		"text": "hi",
	})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestUpdateMissingPost(t *testing.T) {
	e, db := newTestAPI(t)
	_, token := seedUser(t, db, "testuser")

	rec := doRequest(e, http.MethodPatch, "/api/v1/posts/999", token, map[string]interface{}{
		"text": "hi",
	})
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteOwnPost(t *testing.T) {
	e, db := newTestAPI(t)
	author, token := seedUser(t, db, "testuser")
	post := seedPost(t, db, author, "hello", nil)

	rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", post.ID), token, nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", post.ID), "", nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteForeignPost(t *testing.T) {
	e, db := newTestAPI(t)
	author, _ := seedUser(t, db, "testuser")
	_, strangerToken := seedUser(t, db, "anotheruser")
	post := seedPost(t, db, author, "hello", nil)

	rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", post.ID), strangerToken, nil)
	requireStatus(t, rec, http.StatusForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// Full lifecycle: created by A, defended against B, updated and deleted by A.
func TestPostOwnershipLifecycle(t *testing.T) {
	e, db := newTestAPI(t)
	_, tokenA := seedUser(t, db, "A")
	_, tokenB := seedUser(t, db, "B")

	rec := doRequest(e, http.MethodPost, "/api/v1/posts", tokenA, map[string]interface{}{
		"text": "hello",
	})
	requireStatus(t, rec, http.StatusCreated)
	body := decodeBody(t, rec)
	assert.Equal(t, "A", body["author"])
	postID := int(body["id"].(float64))
	path := fmt.Sprintf("/api/v1/posts/%d", postID)

	rec = doRequest(e, http.MethodPatch, path, tokenB, map[string]interface{}{"text": "hi"})
	requireStatus(t, rec, http.StatusForbidden)

	rec = doRequest(e, http.MethodGet, path, "", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "hello", decodeBody(t, rec)["text"])

	rec = doRequest(e, http.MethodPatch, path, tokenA, map[string]interface{}{"text": "hi"})
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "hi", decodeBody(t, rec)["text"])

	rec = doRequest(e, http.MethodDelete, path, tokenA, nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = doRequest(e, http.MethodGet, path, "", nil)
	requireStatus(t, rec, http.StatusNotFound)
}

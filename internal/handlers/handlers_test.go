package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/router"
	"github.com/mkhalid11/openblog/backend/pkg/config"
	"github.com/mkhalid11/openblog/backend/validators"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// newTestAPI spins up the full Echo stack over an in-memory SQLite database.
func newTestAPI(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every session on the same in-memory DB
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db, &config.Config{JWTSecret: testJWTSecret})
	return e, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(username+"-pass-123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, Password: string(hash)}
	require.NoError(t, db.Create(&user).Error)
	return user, signToken(t, user)
}

func signToken(t *testing.T, user models.User) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func seedGroup(t *testing.T, db *gorm.DB, title, slug string) models.Group {
	t.Helper()
	group := models.Group{Title: title, Slug: slug, Description: title + " description"}
	require.NoError(t, db.Create(&group).Error)
	return group
}

func seedPost(t *testing.T, db *gorm.DB, author models.User, text string, groupID *uint) models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, author models.User, post models.Post, text string) models.Comment {
	t.Helper()
	comment := models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}

// doRequest issues a request against the test server. An empty token means
// an anonymous caller.
func doRequest(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) (count float64, results []interface{}) {
	t.Helper()
	body := decodeBody(t, rec)
	require.Contains(t, body, "count")
	require.Contains(t, body, "results")
	count = body["count"].(float64)
	if body["results"] != nil {
		results = body["results"].([]interface{})
	}
	return count, results
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}

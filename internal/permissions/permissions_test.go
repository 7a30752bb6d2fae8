package permissions

import (
	"net/http"
	"testing"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	owner := models.Caller{ID: 7, Username: "owner"}
	stranger := models.Caller{ID: 8, Username: "stranger"}
	anonymous := models.Caller{}

	tests := []struct {
		name     string
		caller   models.Caller
		method   string
		authorID uint
		want     bool
	}{
		{"anonymous read", anonymous, http.MethodGet, 7, true},
		{"anonymous head", anonymous, http.MethodHead, 7, true},
		{"anonymous options", anonymous, http.MethodOptions, 7, true},
		{"stranger read", stranger, http.MethodGet, 7, true},
		{"owner read", owner, http.MethodGet, 7, true},
		{"owner update", owner, http.MethodPatch, 7, true},
		{"owner put", owner, http.MethodPut, 7, true},
		{"owner delete", owner, http.MethodDelete, 7, true},
		{"stranger update", stranger, http.MethodPatch, 7, false},
		{"stranger delete", stranger, http.MethodDelete, 7, false},
		{"anonymous update", anonymous, http.MethodPatch, 7, false},
		{"anonymous delete", anonymous, http.MethodDelete, 7, false},
		{"anonymous post", anonymous, http.MethodPost, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.caller, tt.method, tt.authorID))
		})
	}
}

func TestAllowedIsStateless(t *testing.T) {
	stranger := models.Caller{ID: 8}
	// Same inputs, same answer, however often it is asked.
	for i := 0; i < 3; i++ {
		assert.False(t, Allowed(stranger, http.MethodDelete, 7))
	}
}

// Package permissions holds the stateless allow/deny decision applied to
// every resource operation: reads are open to anyone, writes only to the
// resource's author.
package permissions

import (
	"net/http"

	"github.com/mkhalid11/openblog/backend/internal/models"
)

// Safe reports whether method is read-only.
func Safe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Allowed decides whether caller may apply method to a resource owned by
// authorID. It is a total function of its inputs: no state, no I/O.
// Creation never passes through here; with no pre-existing resource there
// is no owner to check, and the controller injects the caller as author.
func Allowed(caller models.Caller, method string, authorID uint) bool {
	if Safe(method) {
		return true
	}
	if caller.IsAnonymous() {
		return false
	}
	return caller.ID == authorID
}

// Package controllers holds the per-resource decision logic: resolving
// targets and parents, enforcing authentication and ownership, validating
// payloads and driving the persistence layer. Failure ordering is fixed:
// target/parent existence first, then authentication, then ownership, then
// payload validation.
package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"gorm.io/gorm"
)

// lookupError converts a repository lookup failure into the closed error
// taxonomy: a missing row is NotFound, anything else is internal.
func lookupError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what + " not found")
	}
	return apperr.Internal(err)
}

// validationError converts go-playground validation failures into a
// ValidationFailed error with per-field messages.
func validationError(err error) error {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on the '" + fe.Tag() + "' rule"
		}
	}
	return apperr.Validation("invalid request payload", fields)
}

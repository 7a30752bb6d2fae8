package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account able to author posts and comments
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	CreatedAt time.Time `json:"-"`
}

// SignupRequest defines the request body for registering a new user
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest defines the request body for exchanging credentials for a token
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Caller is the identity associated with the current request. The zero
// value is the anonymous caller.
type Caller struct {
	ID       uint
	Username string
}

// IsAnonymous reports whether the caller carries no authenticated identity.
func (c Caller) IsAnonymous() bool {
	return c.ID == 0
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

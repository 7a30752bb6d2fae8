package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

// Signup registers a new user and returns a token for it
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Check if the username is already taken
	if _, err := h.userRepository.GetUserByUsername(c.Request().Context(), req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "username already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return apperr.Internal(err)
	}

	token, err := h.generateToken(user)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"username": user.Username,
		"token":    token,
	})
}

// SignIn exchanges username and password for a token
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Unauthenticated("invalid username or password")
		}
		return apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return apperr.Unauthenticated("invalid username or password")
	}

	token, err := h.generateToken(user)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"username": user.Username,
		"token":    token,
	})
}

// generateToken signs a bearer token for the user. The token is opaque to
// the rest of the system; only the middleware ever looks inside it.
func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

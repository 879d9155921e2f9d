// Package auth is responsible for the login/register/logout flow.
// The service sits between the HTTP handlers and the credential store: it
// validates registration input, delegates credential checks to the store,
// and on success mints an HS256 session token whose jti claim keys the
// server-side session registry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/config"
	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
	"github.com/Varshinigowda8/Resume-Screening-Agent/users"
)

// Service provides authentication-related operations.
type Service struct {
	store      *users.Store
	registry   *session.Registry
	authConfig config.AuthConfig
}

// NewService creates a new Service. Dependencies (credential store, session
// registry, auth settings) are injected explicitly by the caller.
func NewService(store *users.Store, registry *session.Registry, authConfig config.AuthConfig) *Service {
	return &Service{
		store:      store,
		registry:   registry,
		authConfig: authConfig,
	}
}

// SessionClaims is the JWT payload of a session token. The registered ID
// claim (jti) carries the session registry key; Subject carries the
// username.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates a new user record after validating the form input.
// Validation failures and duplicate usernames abort the registration with no
// partial write. The returned message is the user-visible outcome.
func (s *Service) Register(req RegisterRequest) (*MessageResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperror.NewValidationError("Passwords do not match.", nil)
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperror.NewValidationError("All fields are required.", nil)
	}

	if err := s.store.Register(req.Username, req.Password, req.Email); err != nil {
		// The store reports duplicates as a ConflictError; surface it and
		// anything else verbatim.
		return nil, err
	}
	return &MessageResponse{Message: "Registration successful! Please log in."}, nil
}

// Login checks the credentials against the store and, on success, creates a
// server-side session and signs a bearer token for it. A missing user and a
// wrong password produce the same generic failure.
func (s *Service) Login(req LoginRequest) (*TokenResponse, error) {
	ok, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewAuthError("Invalid username or password.", nil)
	}

	sessionID, state := s.registry.Create(req.Username)

	token, expiresAt, err := s.signToken(sessionID, req.Username)
	if err != nil {
		// Don't leave an orphaned session behind if signing fails.
		s.registry.Delete(sessionID)
		return nil, apperror.NewInternalError("failed to issue session token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt.Unix(),
		Session:     session.ToResponse(state),
	}, nil
}

// Logout removes the server-side session. The bearer token becomes useless
// immediately even though it is not cryptographically revoked.
func (s *Service) Logout(sessionID string) {
	s.registry.Delete(sessionID)
}

// signToken creates an HS256 JWT bound to the given session.
func (s *Service) signToken(sessionID, username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.authConfig.SessionDuration)
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   username,
			Issuer:    "resume-screening-agent",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and validates a session token string, checking the
// signature, expiry, and presence of the session ID claim.
func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.ID == "" {
		return nil, errors.New("token has no session id claim")
	}
	return claims, nil
}

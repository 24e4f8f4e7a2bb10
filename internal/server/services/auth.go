// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/server/auth"
	"github.com/avolkau/fittrack/internal/server/models"
	"github.com/avolkau/fittrack/internal/server/repositories/repomanager"
)

// RegisterParams carries the registration payload. The bcrypt password cap
// is 72 bytes, hence the max tag.
type RegisterParams struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

// LoginParams carries the login payload.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is the identity+token bundle returned by Register and Login.
type AuthResult struct {
	UserID    int64
	Email     string
	FirstName string
	LastName  string
	Token     string
	ExpiresAt time.Time
}

// AuthService provides authentication-related operations:
// - Register: create a user and mint a token
// - Login: verify credentials and mint a token
type AuthService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	tokens *auth.TokenIssuer
}

// NewAuthService constructs an AuthService using repositories and the token issuer.
func NewAuthService(db *sql.DB, rm repomanager.RepositoryManager, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{db: db, rm: rm, tokens: tokens}
}

// Register creates a new user and returns their identity with a fresh token.
// A duplicate (case-insensitive) email yields ErrorDuplicateEmail and leaves
// no partial state behind.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(p.Email),
		PasswordHash: string(hash),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
	}

	repo := s.rm.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueFor(user)
}

// Login verifies the credentials and returns the identity with a fresh token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, p LoginParams) (*AuthResult, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	repo := s.rm.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(p.Email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(p.Password)); err != nil {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issueFor(user)
}

func (s *AuthService) issueFor(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &AuthResult{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

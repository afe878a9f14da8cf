package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvieira/accounts-server/internal/apierr"
	"github.com/bvieira/accounts-server/internal/logger"
	"github.com/bvieira/accounts-server/internal/model"
	"github.com/bvieira/accounts-server/internal/password"
	"github.com/bvieira/accounts-server/internal/validate"
)

// referenceHash is a valid bcrypt hash used to keep login attempts against
// unknown emails on the same cost path as wrong-password attempts.
const referenceHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Auth orchestrates registration, login and token validation.
type Auth struct {
	userStore    model.UserStore
	hasher       password.Hasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher password.Hasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new active user account. Input checks run before any
// store access, and the uniqueness pre-check runs before hashing so rejected
// requests never pay for adaptive-hash work.
func (a *Auth) Register(ctx context.Context, name, email, plainPassword string) (model.PublicUser, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if !validate.Email(email) {
		return model.PublicUser{}, apierr.NewErrInvalidEmailFormat(email)
	}
	if !validate.Password(plainPassword) {
		return model.PublicUser{}, apierr.NewErrWeakPassword(validate.MinPasswordLength)
	}

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already in use",
			"email", email)
		return model.PublicUser{}, apierr.NewErrEmailIsTaken(email)
	}

	hash, err := a.hasher.Hash(plainPassword)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		// The store's uniqueness constraint is the source of truth. A
		// collision that slipped past the pre-check surfaces identically.
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.PublicUser{}, apierr.NewErrEmailIsTaken(email)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", saved.ID,
		"email", saved.Email)

	return saved.Public(), nil
}

// Login verifies credentials, gates on account status and issues a token
// bound to the user's identity. Unknown email and wrong password are
// indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, plainPassword string) (model.PublicUser, string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		// Burn one comparison so this path costs the same as a password
		// mismatch.
		a.hasher.Verify(plainPassword, referenceHash)
		return model.PublicUser{}, "", apierr.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(plainPassword, user.PasswordHash) {
		return model.PublicUser{}, "", apierr.NewErrInvalidCredentials()
	}

	// Checked only after the credentials are confirmed so probing cannot
	// distinguish a disabled account from a wrong password.
	if !user.IsActive {
		a.logger.Info("Auth service: login on disabled account",
			"user_id", user.ID)
		return model.PublicUser{}, "", apierr.NewErrAccountDisabled()
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return user.Public(), tokenString, nil
}

// ValidateToken verifies a token and resolves its subject. It confirms
// identity only; account status is not re-checked here.
func (a *Auth) ValidateToken(ctx context.Context, tokenString string) (model.PublicUser, error) {
	claims, err := a.tokenManager.Parse(tokenString)
	if err != nil {
		return model.PublicUser{}, apierr.NewErrInvalidToken()
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		// A stale token must not resolve to any identity.
		return model.PublicUser{}, apierr.NewErrInvalidToken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Public(), nil
}

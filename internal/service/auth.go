package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

// RegisterParams contains parameters to register a new account.
type RegisterParams struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

// Auth manages accounts and the single local session. No in-memory state is
// kept: every call goes back to the store.
type Auth struct {
	userStore model.UserStore
	validate  *validator.Validate
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates an account, stores its password slot and opens a session
// for it. The duplicate-email check is an exact, case-sensitive match.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	a.logger.Debug("auth service: registering user", "email", params.Email)

	if err := a.validate.Struct(params); err != nil {
		return model.User{}, fmt.Errorf("invalid registration params: %w", err)
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("auth service: email already registered", "email", params.Email)
		return model.User{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	now := a.now().UTC()
	user := model.User{
		ID:               uuid.NewString(),
		Email:            params.Email,
		Name:             params.Name,
		CreatedDate:      now,
		LastModifiedDate: now,
	}

	user, err = a.userStore.Create(ctx, user, params.Password)
	if err != nil {
		a.logger.Error("auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.userStore.SetSession(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to set session: %w", err)
	}

	a.logger.Info("auth service: user registered", "email", params.Email, "user_id", user.ID)

	return user, nil
}

// Login verifies the password by plain equality against the stored slot and
// opens a session. This is a single-user demo tool; there is no hashing.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("auth service: logging in", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	stored, err := a.userStore.GetPassword(ctx, user.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get password: %w", err)
	}

	if stored != password {
		a.logger.Info("auth service: password mismatch", "email", email)
		return model.User{}, model.ErrInvalidCredentials
	}

	if err := a.userStore.SetSession(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to set session: %w", err)
	}

	a.logger.Info("auth service: user logged in", "email", email, "user_id", user.ID)

	return user, nil
}

// Logout clears the session unconditionally; logging out twice is fine.
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.userStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	a.logger.Info("auth service: logged out")

	return nil
}

// CurrentUser returns the session user, or model.ErrNotAuthenticated when no
// session is set (or the stored session is unreadable).
func (a *Auth) CurrentUser(ctx context.Context) (model.User, error) {
	user, err := a.userStore.GetSession(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotAuthenticated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get session: %w", err)
	}

	return user, nil
}

// IsAuthenticated reports whether a session user is present.
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	_, err := a.CurrentUser(ctx)
	return err == nil
}

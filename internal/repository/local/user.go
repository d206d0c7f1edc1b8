package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users, their password slots and the session slot.
// It holds no in-memory state: every call re-reads the store so external
// mutation of the database is always picked up.
type UserRepository struct {
	kv     KV
	users  *Collection[model.User]
	logger *logger.Logger
}

func NewUserRepository(kv KV, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		kv:     kv,
		users:  NewCollection[model.User](kv, keyUsers, logger),
		logger: logger,
	}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	return r.users.GetAll(ctx)
}

// GetByEmail matches the email exactly, case-sensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := r.users.GetAll(ctx)
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, user model.User, password string) (model.User, error) {
	if err := r.users.Upsert(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to store user: %w", err)
	}

	if err := r.kv.Set(ctx, passwordKeyPrefix+user.ID, password); err != nil {
		return model.User{}, fmt.Errorf("failed to store password: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetPassword(ctx context.Context, userID string) (string, error) {
	password, ok, err := r.kv.Get(ctx, passwordKeyPrefix+userID)
	if err != nil {
		return "", fmt.Errorf("failed to read password slot: %w", err)
	}
	if !ok {
		return "", model.ErrNotFound
	}

	return password, nil
}

// GetSession returns the session user. An absent or unparsable session slot
// means no session, never a fatal error.
func (r *UserRepository) GetSession(ctx context.Context) (model.User, error) {
	raw, ok, err := r.kv.Get(ctx, keySession)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read session slot: %w", err)
	}
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.logger.Warn("session slot unparsable, treating as no session",
			"error", err.Error())
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) SetSession(ctx context.Context, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	if err := r.kv.Set(ctx, keySession, string(raw)); err != nil {
		return fmt.Errorf("failed to write session slot: %w", err)
	}

	return nil
}

// ClearSession is idempotent: clearing an absent session is not an error.
func (r *UserRepository) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	return nil
}

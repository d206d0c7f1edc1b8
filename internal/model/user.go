package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users and the session slot.
type UserStore interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User, password string) (User, error)
	GetPassword(ctx context.Context, userID string) (string, error)
	GetSession(ctx context.Context) (User, error)
	SetSession(ctx context.Context, user User) error
	ClearSession(ctx context.Context) error
}

// User represents a registered teacher account.
type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	CreatedDate      time.Time      `json:"created_date"`
	LastModifiedDate time.Time      `json:"last_modified_date"`
	Preferences      map[string]any `json:"preferences,omitempty"`
}

// EntityID implements Entity.
func (u User) EntityID() string { return u.ID }

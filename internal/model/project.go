package model

import (
	"context"
	"time"
)

// ProjectStore defines persistence operations for projects.
type ProjectStore interface {
	GetByUserID(ctx context.Context, userID string) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Save(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
}

// ProjectStatus enumerates the two project states.
type ProjectStatus string

const (
	// ProjectStatusActive is the initial status of every project.
	ProjectStatusActive ProjectStatus = "active"
	// ProjectStatusArchived hides a project from the default dashboard view.
	ProjectStatusArchived ProjectStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusActive || s == ProjectStatusArchived
}

// Project is a user-owned folder grouping related teaching materials.
type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	Subject          string        `json:"subject,omitempty"`
	Level            string        `json:"level,omitempty"`
	UserID           string        `json:"user_id"`
	CreatedDate      time.Time     `json:"created_date"`
	LastModifiedDate time.Time     `json:"last_modified_date"`
	Status           ProjectStatus `json:"status"`
}

// EntityID implements Entity.
func (p Project) EntityID() string { return p.ID }

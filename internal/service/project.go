package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

// CreateProjectParams contains parameters to create a project.
type CreateProjectParams struct {
	UserID      string
	Name        string
	Description string
	Subject     string
	Level       string
}

// Project manages the user's project folders and owns the delete cascade
// over their content.
type Project struct {
	projectStore      model.ProjectStore
	lessonPlanStore   model.ContentStore[model.LessonPlan]
	worksheetStore    model.ContentStore[model.Worksheet]
	parentUpdateStore model.ContentStore[model.ParentUpdate]
	logger            *logger.Logger
	now               func() time.Time
}

func NewProject(
	projectStore model.ProjectStore,
	lessonPlanStore model.ContentStore[model.LessonPlan],
	worksheetStore model.ContentStore[model.Worksheet],
	parentUpdateStore model.ContentStore[model.ParentUpdate],
	logger *logger.Logger,
) *Project {
	return &Project{
		projectStore:      projectStore,
		lessonPlanStore:   lessonPlanStore,
		worksheetStore:    worksheetStore,
		parentUpdateStore: parentUpdateStore,
		logger:            logger,
		now:               time.Now,
	}
}

// ListForUser returns the user's projects in insertion order.
func (s *Project) ListForUser(ctx context.Context, userID string) ([]model.Project, error) {
	projects, err := s.projectStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects by user id: %w", err)
	}

	return projects, nil
}

// Get returns one project, treating a project owned by someone else exactly
// like a missing one.
func (s *Project) Get(ctx context.Context, userID, projectID string) (model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	if project.UserID != userID {
		return model.Project{}, model.ErrNotFound
	}

	return project, nil
}

// Create makes a new active project owned by the given user.
func (s *Project) Create(ctx context.Context, params CreateProjectParams) (model.Project, error) {
	now := s.now().UTC()
	project := model.Project{
		ID:               uuid.NewString(),
		Name:             params.Name,
		Description:      params.Description,
		Subject:          params.Subject,
		Level:            params.Level,
		UserID:           params.UserID,
		CreatedDate:      now,
		LastModifiedDate: now,
		Status:           model.ProjectStatusActive,
	}

	if err := s.projectStore.Save(ctx, project); err != nil {
		return model.Project{}, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("project service: project created",
		"project_id", project.ID,
		"user_id", params.UserID)

	return project, nil
}

// Save upserts a complete project record.
func (s *Project) Save(ctx context.Context, project model.Project) error {
	if err := s.projectStore.Save(ctx, project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return nil
}

// Delete removes the project and cascades over all three content kinds. The
// cascade runs even when the project row was already gone, so content from a
// half-finished earlier delete cannot linger.
func (s *Project) Delete(ctx context.Context, projectID string) error {
	if err := s.projectStore.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if err := s.lessonPlanStore.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete lesson plans: %w", err)
	}
	if err := s.worksheetStore.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete worksheets: %w", err)
	}
	if err := s.parentUpdateStore.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete parent updates: %w", err)
	}

	s.logger.Info("project service: project deleted", "project_id", projectID)

	return nil
}

// SetStatus toggles a project between active and archived and bumps its
// modification timestamp.
func (s *Project) SetStatus(ctx context.Context, projectID string, status model.ProjectStatus) (model.Project, error) {
	if !status.Valid() {
		return model.Project{}, fmt.Errorf("unknown project status %q", status)
	}

	project, err := s.projectStore.GetByID(ctx, projectID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Project{}, model.ErrNotFound
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	project.Status = status
	project.LastModifiedDate = s.now().UTC()

	if err := s.projectStore.Save(ctx, project); err != nil {
		return model.Project{}, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("project service: status changed",
		"project_id", projectID,
		"status", string(status))

	return project, nil
}

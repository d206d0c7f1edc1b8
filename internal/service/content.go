package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

// Content manages one kind of project-scoped content. Visibility is always
// resolved in two hops: entity -> owning project -> owning user. Content
// records never carry a user id themselves, so an orphan left behind by an
// interrupted cascade can never surface in a listing.
type Content[T model.ProjectScoped] struct {
	store        model.ContentStore[T]
	projectStore model.ProjectStore
	logger       *logger.Logger
}

func NewContent[T model.ProjectScoped](
	store model.ContentStore[T],
	projectStore model.ProjectStore,
	logger *logger.Logger,
) *Content[T] {
	return &Content[T]{
		store:        store,
		projectStore: projectStore,
		logger:       logger,
	}
}

// ListForProject returns the entities visible to the user. With a non-empty
// projectID the result is narrowed to that one project; the ownership filter
// applies either way.
func (s *Content[T]) ListForProject(ctx context.Context, userID, projectID string) ([]T, error) {
	projects, err := s.projectStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects by user id: %w", err)
	}

	visible := make([]string, 0, len(projects))
	for _, p := range projects {
		visible = append(visible, p.ID)
	}

	entities, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get entities: %w", err)
	}

	var scoped []T
	for _, e := range entities {
		if !slices.Contains(visible, e.ParentProjectID()) {
			continue
		}
		if projectID != "" && e.ParentProjectID() != projectID {
			continue
		}
		scoped = append(scoped, e)
	}

	return scoped, nil
}

// Save upserts a complete entity record. The caller sets the modification
// timestamp before saving.
func (s *Content[T]) Save(ctx context.Context, entity T) error {
	if err := s.store.Save(ctx, entity); err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}

	return nil
}

// Delete removes the entity by id; a missing id is a no-op.
func (s *Content[T]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

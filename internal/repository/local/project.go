package local

import (
	"context"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

var _ model.ProjectStore = (*ProjectRepository)(nil)

// ProjectRepository persists projects in the projects collection.
type ProjectRepository struct {
	projects *Collection[model.Project]
}

func NewProjectRepository(kv KV, logger *logger.Logger) *ProjectRepository {
	return &ProjectRepository{
		projects: NewCollection[model.Project](kv, keyProjects, logger),
	}
}

// GetByUserID returns the user's projects in insertion order.
func (r *ProjectRepository) GetByUserID(ctx context.Context, userID string) ([]model.Project, error) {
	projects, err := r.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var owned []model.Project
	for _, p := range projects {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}

	return owned, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (model.Project, error) {
	return r.projects.GetByID(ctx, id)
}

func (r *ProjectRepository) Save(ctx context.Context, project model.Project) error {
	return r.projects.Upsert(ctx, project)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.projects.DeleteByID(ctx, id)
}

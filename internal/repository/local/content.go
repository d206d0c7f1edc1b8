package local

import (
	"context"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

var (
	_ model.ContentStore[model.LessonPlan]   = (*ContentRepository[model.LessonPlan])(nil)
	_ model.ContentStore[model.Worksheet]    = (*ContentRepository[model.Worksheet])(nil)
	_ model.ContentStore[model.ParentUpdate] = (*ContentRepository[model.ParentUpdate])(nil)
)

// ContentRepository persists one kind of project-scoped content. Content
// records carry no user id; user scoping happens one level up, through the
// owning project.
type ContentRepository[T model.ProjectScoped] struct {
	entities *Collection[T]
}

func NewLessonPlanRepository(kv KV, logger *logger.Logger) *ContentRepository[model.LessonPlan] {
	return &ContentRepository[model.LessonPlan]{
		entities: NewCollection[model.LessonPlan](kv, keyLessonPlans, logger),
	}
}

func NewWorksheetRepository(kv KV, logger *logger.Logger) *ContentRepository[model.Worksheet] {
	return &ContentRepository[model.Worksheet]{
		entities: NewCollection[model.Worksheet](kv, keyWorksheets, logger),
	}
}

func NewParentUpdateRepository(kv KV, logger *logger.Logger) *ContentRepository[model.ParentUpdate] {
	return &ContentRepository[model.ParentUpdate]{
		entities: NewCollection[model.ParentUpdate](kv, keyParentUpdates, logger),
	}
}

func (r *ContentRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.entities.GetAll(ctx)
}

func (r *ContentRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	return r.entities.GetByID(ctx, id)
}

func (r *ContentRepository[T]) Save(ctx context.Context, entity T) error {
	return r.entities.Upsert(ctx, entity)
}

func (r *ContentRepository[T]) Delete(ctx context.Context, id string) error {
	return r.entities.DeleteByID(ctx, id)
}

// DeleteByProject removes every entity owned by the project. Used by the
// project delete cascade; runs even when the project row itself was already
// gone.
func (r *ContentRepository[T]) DeleteByProject(ctx context.Context, projectID string) error {
	return r.entities.DeleteWhere(ctx, func(e T) bool {
		return e.ParentProjectID() == projectID
	})
}

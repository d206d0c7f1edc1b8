// Package cli implements the command surface of teachdesk. It plays the role
// the browser UI played in the original tool: it reads the session, talks to
// the services, and prints results. No business rules live here.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/service"
)

// App bundles the services the commands operate on.
type App struct {
	Auth          *service.Auth
	Projects      *service.Project
	LessonPlans   *service.Content[model.LessonPlan]
	Worksheets    *service.Content[model.Worksheet]
	ParentUpdates *service.Content[model.ParentUpdate]
	Generator     model.ContentGenerator
	Exporter      model.ExportWriter
	Logger        *logger.Logger
	Out           io.Writer
}

// NewRootCommand builds the teachdesk command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teachdesk",
		Short:         "Organize lesson plans, worksheets and parent updates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRegisterCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newProjectCommand(app),
		newLessonPlanCommand(app),
		newWorksheetCommand(app),
		newParentUpdateCommand(app),
	)

	return root
}

// requireUser resolves the session user or fails with a login hint.
func (a *App) requireUser(ctx context.Context) (model.User, error) {
	user, err := a.Auth.CurrentUser(ctx)
	if errors.Is(err, model.ErrNotAuthenticated) {
		return model.User{}, fmt.Errorf("no active session, run 'teachdesk login' first")
	}
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/service"
)

func newProjectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage project folders",
	}

	cmd.AddCommand(
		newProjectListCommand(app),
		newProjectCreateCommand(app),
		newProjectDeleteCommand(app),
		newProjectStatusCommand(app, "archive", model.ProjectStatusArchived),
		newProjectStatusCommand(app, "activate", model.ProjectStatusActive),
	)

	return cmd
}

func newProjectListCommand(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			projects, err := app.Projects.ListForUser(cmd.Context(), user.ID)
			if err != nil {
				return err
			}

			for _, p := range projects {
				if !all && p.Status == model.ProjectStatusArchived {
					continue
				}
				fmt.Fprintf(app.Out, "%s\t%s\t%s\n", p.ID, p.Status, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include archived projects")

	return cmd
}

func newProjectCreateCommand(app *App) *cobra.Command {
	var name, description, subject, level string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			project, err := app.Projects.Create(cmd.Context(), service.CreateProjectParams{
				UserID:      user.ID,
				Name:        name,
				Description: description,
				Subject:     subject,
				Level:       level,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "created project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&subject, "subject", "", "subject")
	cmd.Flags().StringVar(&level, "level", "", "class level")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project and all its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := app.Projects.Get(cmd.Context(), user.ID, args[0]); err != nil {
				return err
			}

			if err := app.Projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "deleted project %s\n", args[0])
			return nil
		},
	}
}

func newProjectStatusCommand(app *App, verb string, status model.ProjectStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <project-id>",
		Short: verb + " a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := app.Projects.Get(cmd.Context(), user.ID, args[0]); err != nil {
				return err
			}

			project, err := app.Projects.SetStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "project %s is now %s\n", project.Name, project.Status)
			return nil
		},
	}
}

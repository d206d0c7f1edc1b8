package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/osokin/teachdesk/internal/generator"
	"github.com/osokin/teachdesk/internal/model"
)

func findByID[T model.ProjectScoped](entities []T, id string) (T, error) {
	for _, e := range entities {
		if e.EntityID() == id {
			return e, nil
		}
	}

	var zero T
	return zero, model.ErrNotFound
}

func newLessonPlanCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lessonplan",
		Aliases: []string{"lp"},
		Short:   "Generate and manage lesson plans",
	}

	var projectID, subject, level, topic string
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a lesson plan into a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := app.Projects.Get(cmd.Context(), user.ID, projectID); err != nil {
				return err
			}

			draft, err := app.Generator.GenerateLessonPlan(cmd.Context(), subject, level, topic)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			plan := model.LessonPlan{
				ID:                uuid.NewString(),
				ProjectID:         projectID,
				Title:             draft.Title,
				Subject:           draft.Subject,
				Level:             draft.Level,
				Topic:             draft.Topic,
				Content:           draft.Content,
				Objectives:        draft.Objectives,
				PracticeQuestions: draft.PracticeQuestions,
				SuggestedAnswers:  draft.SuggestedAnswers,
				CreatedDate:       now,
				LastModifiedDate:  now,
				ExportFormat:      draft.ExportFormat,
			}

			if err := app.LessonPlans.Save(cmd.Context(), plan); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "saved lesson plan %s (%s)\n", plan.Title, plan.ID)
			return nil
		},
	}
	generate.Flags().StringVar(&projectID, "project", "", "project id")
	generate.Flags().StringVar(&subject, "subject", "", "subject")
	generate.Flags().StringVar(&level, "level", "", "class level")
	generate.Flags().StringVar(&topic, "topic", "", "topic")
	generate.MarkFlagRequired("project")
	generate.MarkFlagRequired("subject")
	generate.MarkFlagRequired("level")
	generate.MarkFlagRequired("topic")

	var listProject string
	list := &cobra.Command{
		Use:   "list",
		Short: "List your lesson plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			plans, err := app.LessonPlans.ListForProject(cmd.Context(), user.ID, listProject)
			if err != nil {
				return err
			}

			for _, p := range plans {
				fmt.Fprintf(app.Out, "%s\t%s\n", p.ID, p.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listProject, "project", "", "limit to one project")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lesson plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(cmd.Context()); err != nil {
				return err
			}

			return app.LessonPlans.Delete(cmd.Context(), args[0])
		},
	}

	var asWord bool
	exp := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a lesson plan to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			plans, err := app.LessonPlans.ListForProject(cmd.Context(), user.ID, "")
			if err != nil {
				return err
			}

			plan, err := findByID(plans, args[0])
			if err != nil {
				return err
			}

			path, err := exportContent(app, plan.Title, plan.Content, asWord)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "exported to %s\n", path)
			return nil
		},
	}
	exp.Flags().BoolVar(&asWord, "word", false, "export as a Word document instead of plain text")

	cmd.AddCommand(generate, list, del, exp)

	return cmd
}

func newWorksheetCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worksheet",
		Aliases: []string{"ws"},
		Short:   "Generate and manage worksheets",
	}

	var projectID, subject, level, topic string
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a worksheet into a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := app.Projects.Get(cmd.Context(), user.ID, projectID); err != nil {
				return err
			}

			draft, err := app.Generator.GenerateWorksheet(cmd.Context(), subject, level, topic)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			sheet := model.Worksheet{
				ID:               uuid.NewString(),
				ProjectID:        projectID,
				Title:            draft.Title,
				Subject:          draft.Subject,
				Level:            draft.Level,
				Topic:            draft.Topic,
				Content:          draft.Content,
				Questions:        draft.Questions,
				AnswerKey:        draft.AnswerKey,
				CreatedDate:      now,
				LastModifiedDate: now,
				ExportFormat:     draft.ExportFormat,
			}

			if err := app.Worksheets.Save(cmd.Context(), sheet); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "saved worksheet %s (%s)\n", sheet.Title, sheet.ID)
			return nil
		},
	}
	generate.Flags().StringVar(&projectID, "project", "", "project id")
	generate.Flags().StringVar(&subject, "subject", "", "subject")
	generate.Flags().StringVar(&level, "level", "", "class level")
	generate.Flags().StringVar(&topic, "topic", "", "topic")
	generate.MarkFlagRequired("project")
	generate.MarkFlagRequired("subject")
	generate.MarkFlagRequired("level")
	generate.MarkFlagRequired("topic")

	var listProject string
	list := &cobra.Command{
		Use:   "list",
		Short: "List your worksheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			sheets, err := app.Worksheets.ListForProject(cmd.Context(), user.ID, listProject)
			if err != nil {
				return err
			}

			for _, w := range sheets {
				fmt.Fprintf(app.Out, "%s\t%s\n", w.ID, w.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listProject, "project", "", "limit to one project")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(cmd.Context()); err != nil {
				return err
			}

			return app.Worksheets.Delete(cmd.Context(), args[0])
		},
	}

	var asWord bool
	exp := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a worksheet to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			sheets, err := app.Worksheets.ListForProject(cmd.Context(), user.ID, "")
			if err != nil {
				return err
			}

			sheet, err := findByID(sheets, args[0])
			if err != nil {
				return err
			}

			path, err := exportContent(app, sheet.Title, sheet.Content, asWord)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "exported to %s\n", path)
			return nil
		},
	}
	exp.Flags().BoolVar(&asWord, "word", false, "export as a Word document instead of plain text")

	cmd.AddCommand(generate, list, del, exp)

	return cmd
}

func newParentUpdateCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parentupdate",
		Aliases: []string{"pu"},
		Short:   "Draft and manage parent updates",
	}

	var projectID, rosterPath string
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Draft parent updates from a CSV roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			project, err := app.Projects.Get(cmd.Context(), user.ID, projectID)
			if err != nil {
				return err
			}

			f, err := os.Open(rosterPath)
			if err != nil {
				return fmt.Errorf("failed to open roster: %w", err)
			}
			defer f.Close()

			rows, err := generator.ParseRoster(f)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("roster %s contains no student rows", rosterPath)
			}

			drafts, err := app.Generator.GenerateParentUpdates(cmd.Context(), rows, project.Name)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			for _, draft := range drafts {
				update := model.ParentUpdate{
					ID:                  uuid.NewString(),
					ProjectID:           projectID,
					StudentName:         draft.StudentName,
					Subject:             draft.Subject,
					ProgressSummary:     draft.ProgressSummary,
					Strengths:           draft.Strengths,
					AreasForImprovement: draft.AreasForImprovement,
					NextSteps:           draft.NextSteps,
					DraftText:           draft.DraftText,
					CreatedDate:         now,
					LastModifiedDate:    now,
				}
				if err := app.ParentUpdates.Save(cmd.Context(), update); err != nil {
					return err
				}
			}

			fmt.Fprintf(app.Out, "saved %d parent updates\n", len(drafts))
			return nil
		},
	}
	generate.Flags().StringVar(&projectID, "project", "", "project id")
	generate.Flags().StringVar(&rosterPath, "roster", "", "path to the student roster CSV")
	generate.MarkFlagRequired("project")
	generate.MarkFlagRequired("roster")

	var listProject string
	list := &cobra.Command{
		Use:   "list",
		Short: "List your parent updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			updates, err := app.ParentUpdates.ListForProject(cmd.Context(), user.ID, listProject)
			if err != nil {
				return err
			}

			for _, u := range updates {
				fmt.Fprintf(app.Out, "%s\t%s\t%s\n", u.ID, u.StudentName, u.Subject)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listProject, "project", "", "limit to one project")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a parent update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(cmd.Context()); err != nil {
				return err
			}

			return app.ParentUpdates.Delete(cmd.Context(), args[0])
		},
	}

	var asWord bool
	exp := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a parent update draft to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			updates, err := app.ParentUpdates.ListForProject(cmd.Context(), user.ID, "")
			if err != nil {
				return err
			}

			update, err := findByID(updates, args[0])
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Parent Update - %s", update.StudentName)
			path, err := exportContent(app, title, update.DraftText, asWord)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "exported to %s\n", path)
			return nil
		},
	}
	exp.Flags().BoolVar(&asWord, "word", false, "export as a Word document instead of plain text")

	cmd.AddCommand(generate, list, del, exp)

	return cmd
}

func exportContent(app *App, title, body string, asWord bool) (string, error) {
	if asWord {
		return app.Exporter.WriteDocument(model.Document{Title: title, Body: body}, title)
	}
	return app.Exporter.WriteText(body, title)
}

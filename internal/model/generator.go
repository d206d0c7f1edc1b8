package model

import "context"

// ContentGenerator produces draft teaching materials from structured
// parameters. The shipped implementation is a deterministic template engine
// behind an artificial delay; a real backend would satisfy the same interface.
type ContentGenerator interface {
	GenerateLessonPlan(ctx context.Context, subject, level, topic string) (LessonPlanDraft, error)
	GenerateWorksheet(ctx context.Context, subject, level, topic string) (WorksheetDraft, error)
	GenerateParentUpdates(ctx context.Context, rows []StudentRow, projectName string) ([]ParentUpdateDraft, error)
}

// LessonPlanDraft is generator output before it is attached to a project and
// assigned an id.
type LessonPlanDraft struct {
	Title             string
	Subject           string
	Level             string
	Topic             string
	Content           string
	Objectives        []string
	PracticeQuestions []string
	SuggestedAnswers  []string
	ExportFormat      ExportFormat
}

// WorksheetDraft is generator output before it is attached to a project.
type WorksheetDraft struct {
	Title        string
	Subject      string
	Level        string
	Topic        string
	Content      string
	Questions    []string
	AnswerKey    []string
	ExportFormat ExportFormat
}

// ParentUpdateDraft is generator output for one student row.
type ParentUpdateDraft struct {
	StudentName         string
	Subject             string
	ProgressSummary     string
	Strengths           []string
	AreasForImprovement []string
	NextSteps           string
	DraftText           string
}

// StudentRow is one row of an assessment roster, usually parsed from a CSV
// upload. Only Name and Subject are required; the generator fills sensible
// defaults for the rest.
type StudentRow struct {
	Name                string
	Subject             string
	Score               float64
	Grade               string
	StrengthsObserved   string
	AreasForImprovement string
	AdditionalComments  string
	AssessmentType      string
}

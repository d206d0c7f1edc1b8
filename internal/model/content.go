package model

import (
	"context"
	"time"
)

// ContentStore defines persistence operations for project-scoped content
// entities. One store exists per content kind, all over the same engine.
type ContentStore[T ProjectScoped] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// ExportFormat enumerates supported export targets for generated content.
type ExportFormat string

const (
	// ExportFormatPDF exports as plain text (pdf rendering is out of scope).
	ExportFormatPDF ExportFormat = "pdf"
	// ExportFormatWord exports as a Word-compatible document.
	ExportFormatWord ExportFormat = "word"
)

// LessonPlan is a generated lesson plan stored under a project.
type LessonPlan struct {
	ID                string       `json:"id"`
	ProjectID         string       `json:"project_id"`
	Title             string       `json:"title"`
	Subject           string       `json:"subject"`
	Level             string       `json:"level"`
	Topic             string       `json:"topic"`
	Content           string       `json:"content"`
	Objectives        []string     `json:"objectives"`
	PracticeQuestions []string     `json:"practice_questions"`
	SuggestedAnswers  []string     `json:"suggested_answers"`
	CreatedDate       time.Time    `json:"created_date"`
	LastModifiedDate  time.Time    `json:"last_modified_date"`
	ExportFormat      ExportFormat `json:"export_format"`
}

// EntityID implements Entity.
func (lp LessonPlan) EntityID() string { return lp.ID }

// ParentProjectID implements ProjectScoped.
func (lp LessonPlan) ParentProjectID() string { return lp.ProjectID }

// Worksheet is a generated worksheet stored under a project.
type Worksheet struct {
	ID               string       `json:"id"`
	ProjectID        string       `json:"project_id"`
	Title            string       `json:"title"`
	Subject          string       `json:"subject"`
	Level            string       `json:"level"`
	Topic            string       `json:"topic"`
	Content          string       `json:"content"`
	Questions        []string     `json:"questions"`
	AnswerKey        []string     `json:"answer_key"`
	CreatedDate      time.Time    `json:"created_date"`
	LastModifiedDate time.Time    `json:"last_modified_date"`
	ExportFormat     ExportFormat `json:"export_format"`
}

// EntityID implements Entity.
func (w Worksheet) EntityID() string { return w.ID }

// ParentProjectID implements ProjectScoped.
func (w Worksheet) ParentProjectID() string { return w.ProjectID }

// ParentUpdate is a drafted progress letter for one student, stored under a
// project.
type ParentUpdate struct {
	ID                  string    `json:"id"`
	ProjectID           string    `json:"project_id"`
	StudentName         string    `json:"student_name"`
	Subject             string    `json:"subject"`
	ProgressSummary     string    `json:"progress_summary"`
	Strengths           []string  `json:"strengths"`
	AreasForImprovement []string  `json:"areas_for_improvement"`
	NextSteps           string    `json:"next_steps"`
	DraftText           string    `json:"draft_text"`
	CreatedDate         time.Time `json:"created_date"`
	LastModifiedDate    time.Time `json:"last_modified_date"`
}

// EntityID implements Entity.
func (pu ParentUpdate) EntityID() string { return pu.ID }

// ParentProjectID implements ProjectScoped.
func (pu ParentUpdate) ParentProjectID() string { return pu.ProjectID }

package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/testutil"
)

func TestMock_GenerateLessonPlan(t *testing.T) {
	m := NewMock(0, testutil.MakeNoopLogger())

	draft, err := m.GenerateLessonPlan(context.Background(), "Math", "Primary 4", "Fractions")
	require.NoError(t, err)

	assert.Equal(t, "Math - Fractions", draft.Title)
	assert.Equal(t, "Math", draft.Subject)
	assert.Equal(t, "Primary 4", draft.Level)
	assert.Equal(t, "Fractions", draft.Topic)
	assert.Len(t, draft.Objectives, 3)
	assert.Len(t, draft.PracticeQuestions, 5)
	assert.Len(t, draft.SuggestedAnswers, 5)
	assert.Contains(t, draft.Content, "# Math Lesson Plan - Fractions")
	assert.Contains(t, draft.Content, "## Level: Primary 4")
	assert.Equal(t, model.ExportFormatPDF, draft.ExportFormat)
}

func TestMock_GenerateLessonPlan_Deterministic(t *testing.T) {
	m := NewMock(0, testutil.MakeNoopLogger())
	ctx := context.Background()

	first, err := m.GenerateLessonPlan(ctx, "Science", "Secondary 1", "Photosynthesis")
	require.NoError(t, err)
	second, err := m.GenerateLessonPlan(ctx, "Science", "Secondary 1", "Photosynthesis")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMock_GenerateWorksheet(t *testing.T) {
	m := NewMock(0, testutil.MakeNoopLogger())

	draft, err := m.GenerateWorksheet(context.Background(), "Math", "Primary 4", "Fractions")
	require.NoError(t, err)

	assert.Equal(t, "Math Worksheet - Fractions", draft.Title)
	assert.Len(t, draft.Questions, 8)
	assert.Len(t, draft.AnswerKey, 8)
	assert.Contains(t, draft.Content, "Score: _____ / 8")
}

func TestMock_GenerateParentUpdates_GradeBanding(t *testing.T) {
	m := NewMock(0, testutil.MakeNoopLogger())

	rows := []model.StudentRow{
		{Name: "Amy", Subject: "Math", Score: 85},
		{Name: "Ben", Subject: "Math", Score: 72},
		{Name: "Cheryl", Subject: "Math", Score: 61},
		{Name: "Dan", Subject: "Math", Score: 55},
		{Name: "Elle", Subject: "Math", Score: 30},
	}

	drafts, err := m.GenerateParentUpdates(context.Background(), rows, "Math 2025")
	require.NoError(t, err)
	require.Len(t, drafts, 5)

	assert.Contains(t, drafts[0].DraftText, "(Grade A)")
	assert.Contains(t, drafts[1].DraftText, "(Grade B)")
	assert.Contains(t, drafts[2].DraftText, "(Grade C)")
	assert.Contains(t, drafts[3].DraftText, "(Grade D)")
	assert.Contains(t, drafts[4].DraftText, "(Grade F)")

	assert.Contains(t, drafts[0].ProgressSummary, "performing excellently")
	assert.Contains(t, drafts[4].ProgressSummary, "needs additional support")
}

func TestMock_GenerateParentUpdates_RowOverridesWin(t *testing.T) {
	m := NewMock(0, testutil.MakeNoopLogger())

	rows := []model.StudentRow{{
		Name:                "Amy",
		Subject:             "Math",
		Score:               42,
		Grade:               "B+",
		StrengthsObserved:   "Great mental arithmetic",
		AreasForImprovement: "Word problems",
		AdditionalComments:  "Moved up a group this term",
		AssessmentType:      "mid-year exam",
	}}

	drafts, err := m.GenerateParentUpdates(context.Background(), rows, "Math 2025")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, []string{"Great mental arithmetic"}, d.Strengths)
	assert.Equal(t, []string{"Word problems"}, d.AreasForImprovement)
	assert.Contains(t, d.DraftText, "(Grade B+)")
	assert.Contains(t, d.DraftText, "mid-year exam")
	assert.Contains(t, d.DraftText, "Moved up a group this term")
}

func TestMock_Wait_CancelledContext(t *testing.T) {
	m := NewMock(10*time.Second, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.GenerateLessonPlan(ctx, "Math", "Primary 4", "Fractions")
	assert.ErrorIs(t, err, context.Canceled)
}

package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoster(t *testing.T) {
	csv := `Name,Subject,Score,Grade,strengths_observed,areas_for_improvement,additional_comments,assessment_type
Amy,Math,85,,Quick learner,,Helpful in class,quiz
Ben,Math,72.5,B,,Careless mistakes,,
`
	rows, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Amy", rows[0].Name)
	assert.Equal(t, "Math", rows[0].Subject)
	assert.Equal(t, 85.0, rows[0].Score)
	assert.Empty(t, rows[0].Grade)
	assert.Equal(t, "Quick learner", rows[0].StrengthsObserved)
	assert.Equal(t, "Helpful in class", rows[0].AdditionalComments)
	assert.Equal(t, "quiz", rows[0].AssessmentType)

	assert.Equal(t, 72.5, rows[1].Score)
	assert.Equal(t, "B", rows[1].Grade)
	assert.Equal(t, "Careless mistakes", rows[1].AreasForImprovement)
}

func TestParseRoster_SkipsBlankAndUnnamedRows(t *testing.T) {
	csv := `name,subject,score
Amy,Math,85
,Math,50
Ben,Math,banana
`
	rows, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Amy", rows[0].Name)
	// unparsable scores read as zero
	assert.Equal(t, "Ben", rows[1].Name)
	assert.Zero(t, rows[1].Score)
}

func TestParseRoster_Empty(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRoster_UnknownColumnsIgnored(t *testing.T) {
	csv := `name,homeroom,score
Amy,4B,85
`
	rows, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Amy", rows[0].Name)
	assert.Empty(t, rows[0].Subject)
}

package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osokin/teachdesk/internal/model"
)

// ParseRoster reads a student assessment roster from CSV. The first row is a
// header; columns are matched case-insensitively by name and unknown columns
// are ignored. Rows without a student name are skipped. An unparsable score
// is read as zero, matching the lenient behavior teachers expect from pasted
// spreadsheet exports.
func ParseRoster(r io.Reader) ([]model.StudentRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []model.StudentRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}

		name := field(record, "name")
		if name == "" {
			continue
		}

		score, _ := strconv.ParseFloat(field(record, "score"), 64)

		rows = append(rows, model.StudentRow{
			Name:                name,
			Subject:             field(record, "subject"),
			Score:               score,
			Grade:               field(record, "grade"),
			StrengthsObserved:   field(record, "strengths_observed"),
			AreasForImprovement: field(record, "areas_for_improvement"),
			AdditionalComments:  field(record, "additional_comments"),
			AssessmentType:      field(record, "assessment_type"),
		})
	}

	return rows, nil
}

// Package generator implements the content generator as deterministic string
// templating behind an artificial delay. The output shape matches what a
// future real backend would return, so callers never need to know which one
// they are talking to.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

var _ model.ContentGenerator = (*Mock)(nil)

// Mock generates draft content from templates. Safe for concurrent use; it
// holds no mutable state.
type Mock struct {
	delay  time.Duration
	logger *logger.Logger
}

// NewMock returns a generator that pauses for delay before answering, to
// approximate a remote call. A zero delay answers immediately.
func NewMock(delay time.Duration, logger *logger.Logger) *Mock {
	return &Mock{
		delay:  delay,
		logger: logger,
	}
}

func (m *Mock) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GenerateLessonPlan produces a lesson plan draft for the given subject,
// level and topic.
func (m *Mock) GenerateLessonPlan(ctx context.Context, subject, level, topic string) (model.LessonPlanDraft, error) {
	m.logger.Debug("generator: lesson plan requested",
		"subject", subject,
		"level", level,
		"topic", topic)

	if err := m.wait(ctx); err != nil {
		return model.LessonPlanDraft{}, err
	}

	objectives := []string{
		fmt.Sprintf("Students will understand the concept of %s in %s", topic, subject),
		fmt.Sprintf("Students will be able to apply %s concepts to solve problems", topic),
		"Students will demonstrate mastery through practice exercises",
	}

	practiceQuestions := []string{
		fmt.Sprintf("Basic question about %s: What is the definition of %s?", topic, topic),
		fmt.Sprintf("Application question: How would you use %s in a real-world scenario?", topic),
		fmt.Sprintf("Problem-solving question: Solve this %s problem step by step.", topic),
		fmt.Sprintf("Critical thinking question: Compare and contrast different approaches to %s.", topic),
		fmt.Sprintf("Extension question: How does %s relate to other concepts in %s?", topic, subject),
	}

	suggestedAnswers := []string{
		fmt.Sprintf("Answer 1: %s is defined as... (detailed explanation)", topic),
		fmt.Sprintf("Answer 2: In real-world applications, %s can be used for... (examples)", topic),
		"Answer 3: Step-by-step solution: 1) First step... 2) Second step... 3) Final answer",
		"Answer 4: Comparison shows that... (detailed analysis)",
		fmt.Sprintf("Answer 5: %s connects to other concepts through... (relationships)", topic),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Lesson Plan - %s\n## Level: %s\n\n", subject, topic, level)
	b.WriteString("### Learning Objectives\n")
	for i, obj := range objectives {
		fmt.Fprintf(&b, "%d. %s\n", i+1, obj)
	}
	fmt.Fprintf(&b, `
### Lesson Structure
**Introduction (10 minutes)**
- Review previous concepts
- Introduce %[1]s with real-world examples
- Set learning goals for the lesson

**Main Content (25 minutes)**
- Explain key concepts of %[1]s
- Demonstrate problem-solving techniques
- Interactive examples and guided practice

**Practice & Assessment (15 minutes)**
- Individual practice questions
- Peer discussion and sharing
- Quick assessment of understanding

**Conclusion (5 minutes)**
- Summarize key points
- Preview next lesson
- Assign homework/extension activities

### Teaching Notes
- Use visual aids and manipulatives where appropriate
- Encourage student participation and questions
- Differentiate instruction for various ability levels
- Connect to MOE syllabus requirements for %[2]s

### Resources Needed
- Whiteboard/projector
- Student worksheets
- Manipulatives (if applicable)
- Assessment rubric
`, topic, level)

	return model.LessonPlanDraft{
		Title:             fmt.Sprintf("%s - %s", subject, topic),
		Subject:           subject,
		Level:             level,
		Topic:             topic,
		Content:           b.String(),
		Objectives:        objectives,
		PracticeQuestions: practiceQuestions,
		SuggestedAnswers:  suggestedAnswers,
		ExportFormat:      model.ExportFormatPDF,
	}, nil
}

// GenerateWorksheet produces a worksheet draft with questions and an answer
// key.
func (m *Mock) GenerateWorksheet(ctx context.Context, subject, level, topic string) (model.WorksheetDraft, error) {
	m.logger.Debug("generator: worksheet requested",
		"subject", subject,
		"level", level,
		"topic", topic)

	if err := m.wait(ctx); err != nil {
		return model.WorksheetDraft{}, err
	}

	questions := []string{
		fmt.Sprintf("Question 1: Define %s and provide an example.", topic),
		fmt.Sprintf("Question 2: Solve the following %s problem: [Problem details here]", topic),
		fmt.Sprintf("Question 3: Multiple choice - Which of the following best describes %s? a) Option A b) Option B c) Option C d) Option D", topic),
		fmt.Sprintf("Question 4: True or False - %s is always applicable in %s. Explain your answer.", topic, subject),
		fmt.Sprintf("Question 5: Application question - How would you use %s to solve this real-world problem?", topic),
		fmt.Sprintf("Question 6: Compare and contrast %s with related concepts.", topic),
		fmt.Sprintf("Question 7: Create your own example of %s and explain your reasoning.", topic),
		fmt.Sprintf("Question 8: Challenge question - Advanced application of %s concepts.", topic),
	}

	answerKey := []string{
		fmt.Sprintf("Answer 1: %s is defined as... Example: ...", topic),
		"Answer 2: Step-by-step solution with working shown",
		"Answer 3: Correct answer is (c) with explanation",
		"Answer 4: False/True - Detailed explanation of reasoning",
		"Answer 5: Sample solution with methodology explained",
		"Answer 6: Detailed comparison with key differences highlighted",
		"Answer 7: Sample student response with evaluation criteria",
		"Answer 8: Advanced solution with multiple approaches shown",
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Worksheet - %s\n## Level: %s\n## Name: _________________ Date: _________\n\n", subject, topic, level)
	b.WriteString(`### Instructions
- Read each question carefully
- Show all working where applicable
- Use the space provided for your answers
- Ask your teacher if you need clarification

### Questions
`)
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n\n_________________________________\n\n", i+1, q)
	}
	fmt.Fprintf(&b, `### Reflection
What did you find most challenging about %s?
_________________________________

What would you like to learn more about?
_________________________________

### Teacher Use Only
Score: _____ / %d
Comments: _________________________________
`, topic, len(questions))

	return model.WorksheetDraft{
		Title:        fmt.Sprintf("%s Worksheet - %s", subject, topic),
		Subject:      subject,
		Level:        level,
		Topic:        topic,
		Content:      b.String(),
		Questions:    questions,
		AnswerKey:    answerKey,
		ExportFormat: model.ExportFormatPDF,
	}, nil
}

// GenerateParentUpdates produces one draft letter per roster row. Rows with
// blank optional fields get score-banded defaults.
func (m *Mock) GenerateParentUpdates(ctx context.Context, rows []model.StudentRow, projectName string) ([]model.ParentUpdateDraft, error) {
	m.logger.Debug("generator: parent updates requested",
		"students", len(rows),
		"project", projectName)

	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	drafts := make([]model.ParentUpdateDraft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, m.draftForStudent(row))
	}

	return drafts, nil
}

func (m *Mock) draftForStudent(row model.StudentRow) model.ParentUpdateDraft {
	score := row.Score
	grade := row.Grade
	if grade == "" {
		grade = gradeForScore(score)
	}

	strengths := []string{row.StrengthsObserved}
	if row.StrengthsObserved == "" {
		first := "Shows good effort and participation"
		if score >= 80 {
			first = "Excellent understanding of concepts"
		}
		strengths = []string{
			first,
			"Completes assignments on time",
			"Asks thoughtful questions",
		}
	}

	improvements := []string{row.AreasForImprovement}
	if row.AreasForImprovement == "" {
		first := "Could benefit from additional challenging exercises"
		if score < 70 {
			first = "Needs more practice with problem-solving"
		}
		improvements = []string{
			first,
			"Should review homework more carefully",
			"Can improve attention to detail",
		}
	}

	var progressSummary string
	switch {
	case score >= 80:
		progressSummary = fmt.Sprintf("%s is performing excellently in %s. They demonstrate strong understanding and consistently produce quality work.", row.Name, row.Subject)
	case score >= 70:
		progressSummary = fmt.Sprintf("%s is making good progress in %s. They show solid understanding with room for continued growth.", row.Name, row.Subject)
	case score >= 60:
		progressSummary = fmt.Sprintf("%s is developing their skills in %s. With continued effort, they can achieve better results.", row.Name, row.Subject)
	default:
		progressSummary = fmt.Sprintf("%s needs additional support in %s. We're working together to strengthen their foundation.", row.Name, row.Subject)
	}

	var nextSteps string
	switch {
	case score >= 80:
		nextSteps = "Continue with advanced practice and extension activities to maintain excellence."
	case score >= 70:
		nextSteps = "Focus on consistent practice and review to build confidence and accuracy."
	default:
		nextSteps = "Provide additional support at home with basic concepts and regular practice."
	}

	assessmentType := row.AssessmentType
	if assessmentType == "" {
		assessmentType = "assessment"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear Parent/Guardian,\n\nI hope this message finds you well. I wanted to share an update on %s's progress in %s.\n\n", row.Name, row.Subject)
	fmt.Fprintf(&b, "**Progress Summary:**\n%s\n\n", progressSummary)
	fmt.Fprintf(&b, "**Recent Assessment:**\n%s scored %.0f%% (Grade %s) on our recent %s. \n\n", row.Name, score, grade, assessmentType)
	b.WriteString("**Strengths I've Observed:**\n")
	for _, s := range strengths {
		fmt.Fprintf(&b, "• %s\n", s)
	}
	b.WriteString("\n**Areas for Continued Growth:**\n")
	for _, i := range improvements {
		fmt.Fprintf(&b, "• %s\n", i)
	}
	fmt.Fprintf(&b, "\n**Next Steps:**\n%s\n\n", nextSteps)
	if row.AdditionalComments != "" {
		fmt.Fprintf(&b, "**Additional Notes:**\n%s\n\n", row.AdditionalComments)
	}
	fmt.Fprintf(&b, "Please feel free to reach out if you have any questions or would like to discuss %s's progress further. I'm here to support their learning journey.\n\nBest regards,\n[Your Name]\n[Your Contact Information]", row.Name)

	return model.ParentUpdateDraft{
		StudentName:         row.Name,
		Subject:             row.Subject,
		ProgressSummary:     progressSummary,
		Strengths:           strengths,
		AreasForImprovement: improvements,
		NextSteps:           nextSteps,
		DraftText:           b.String(),
	}
}

func gradeForScore(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

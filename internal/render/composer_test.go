package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eval-report-engine/internal/models"
)

func fullDataset() *models.EvaluationDataset {
	return &models.EvaluationDataset{
		Meta: models.ReportMeta{
			ProfessorName: "Maria Perez",
			SubjectName:   "Calculus I",
			Period:        "2024-2",
			ReportDate:    "2025-01-15",
			Institution:   "Facultad de Ciencias",
		},
		NumericResponses: []models.ResponseSet{
			numericSet("q1", 5, 5, 4, 0, 0),
			numericSet("q2", 3, 4, 4, 5),
			numericSet("q3", 2, 3, 0),
		},
		TextResponses: []models.ResponseSet{
			{QuestionID: "q4", Title: "What would you improve?", Kind: models.ResponseKindText,
				Texts: []string{"More examples in class", "Faster grading"}},
		},
		SemesterAverages: []models.SemesterAverage{
			{SemesterID: "2024-2", Average: 4.2, Count: 31, DisplayName: "2024-2"},
			{SemesterID: "2023-1", Average: 3.8, Count: 28, DisplayName: "2023-1"},
			{SemesterID: "2024-1", Average: 4.0, Count: 30, DisplayName: "2024-1"},
		},
		Comments: []models.FeedbackComment{
			{Author: "Student", Date: "2024-11-02", Text: "Great lecturer, very clear explanations."},
			{Text: "Office hours were helpful."},
		},
		Autoevaluations: []models.AutoevaluationGroup{
			{SemesterID: "2024-1", DisplayName: "2024-1", Answers: []models.AutoevalAnswer{
				{Question: "What teaching goals did you meet?", Answer: "Covered the full syllabus with weekly workshops."},
			}},
		},
		Coevaluations: []models.CoevaluationRecord{
			{SemesterID: "2024-1", Evaluator: "Dept. Chair", Date: "2024-06-10",
				Findings: "Strong student engagement observed.",
				Plan:     "Introduce rubric-based grading next term."},
		},
	}
}

func TestComposerRenderIsDeterministic(t *testing.T) {
	st := DefaultStyle()
	comp := NewComposer(st, "Facultad de Ciencias - Evaluacion Docente", nil)

	recA := NewCommandRecorder(595.28, 841.89)
	recB := NewCommandRecorder(595.28, 841.89)

	require.NoError(t, comp.Render(recA, fullDataset()))
	require.NoError(t, comp.Render(recB, fullDataset()))

	require.Equal(t, recA.Commands, recB.Commands, "identical dataset must produce an identical command stream")
}

func TestComposerRendersAllSections(t *testing.T) {
	st := DefaultStyle()
	comp := NewComposer(st, "institutional caption", nil)
	rec := NewCommandRecorder(595.28, 841.89)

	require.NoError(t, comp.Render(rec, fullDataset()))

	for _, title := range []string{
		"Professor Evaluation Report",
		"Score Overview",
		"Score Distribution",
		"Performance by Question",
		"Response Histogram",
		"Category Breakdown",
		"Historical Timeline",
		"Trend Indicator",
		"Student Comments",
		"Student Evaluation Detail",
		"Autoevaluation by Semester",
		"Institutional Coevaluation",
	} {
		require.True(t, rec.ContainsText(title), "missing %q", title)
	}
}

func TestComposerFooterPassCoversEveryPage(t *testing.T) {
	st := DefaultStyle()
	comp := NewComposer(st, "caption line", nil)
	rec := NewCommandRecorder(595.28, 841.89)

	require.NoError(t, comp.Render(rec, fullDataset()))

	total := rec.PageCount()
	require.Greater(t, total, 1)
	for i := 1; i <= total; i++ {
		require.True(t, rec.ContainsText(fmt.Sprintf("Page %d of %d", i, total)))
	}
	require.Equal(t, total, rec.CountPrefix("setpage"), "footer pass revisits every page exactly once")
}

func TestComposerEmptyDatasetStillProducesDocument(t *testing.T) {
	st := DefaultStyle()
	comp := NewComposer(st, "", nil)
	rec := NewCommandRecorder(595.28, 841.89)

	require.NoError(t, comp.Render(rec, &models.EvaluationDataset{}))

	require.GreaterOrEqual(t, rec.PageCount(), 1)
	require.True(t, rec.ContainsText("No evaluation responses available"))
	require.True(t, rec.ContainsText("No semester data available"))
	require.True(t, rec.ContainsText("Not enough data to compute a trend"))
}

type explodingSection struct{ mode string }

func (s explodingSection) Name() string { return "Exploding" }

func (s explodingSection) Estimate(ds *models.EvaluationDataset) float64 { return 50 }

func (s explodingSection) Draw(surface Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	if s.mode == "panic" {
		var empty []int
		_ = empty[3] // out-of-range, simulates malformed dataset indexing
	}
	return errors.New("backend rejected a drawing call")
}

func TestComposerSubstitutesDiagnosticOnSectionFailure(t *testing.T) {
	st := DefaultStyle()
	comp := NewComposer(st, "", nil)

	for _, mode := range []string{"error", "panic"} {
		t.Run(mode, func(t *testing.T) {
			rec := NewCommandRecorder(595.28, 841.89)
			rec.AddPage()
			cur := NewCursor(rec, st)

			comp.renderSection(rec, cur, explodingSection{mode: mode}, &models.EvaluationDataset{})

			require.True(t, rec.ContainsText("Exploding could not be rendered"))
			require.True(t, rec.ContainsText("The rest of the report is unaffected."))
		})
	}
}

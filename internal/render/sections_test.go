package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eval-report-engine/internal/models"
)

func numericSet(id string, values ...float64) models.ResponseSet {
	return models.ResponseSet{
		QuestionID: id,
		Title:      "Question " + id,
		Kind:       models.ResponseKindNumeric,
		Numbers:    values,
	}
}

func TestTrendsSectionPaginatesLongQuestionList(t *testing.T) {
	st := DefaultStyle()
	// Page sized so exactly 10 trend rows fit below the section header:
	// budget 300, header 38, rows of 26.
	rec := NewCommandRecorder(500, 400)
	rec.AddPage()
	cur := NewCursor(rec, st)

	ds := &models.EvaluationDataset{}
	for i := 0; i < 40; i++ {
		ds.NumericResponses = append(ds.NumericResponses, numericSet(fmt.Sprintf("q%02d", i), 4, 5, 3))
	}

	sec := &TrendsSection{style: st}
	require.NoError(t, sec.Draw(rec, cur, ds))

	require.Equal(t, 4, rec.PageCount(), "40 rows at 10 per page must span 4 pages")
	require.Equal(t, 3, cur.PageIndex)

	continued := 0
	for _, c := range rec.Commands {
		if len(c) > 4 && c[:4] == "text" && containsSub(c, "(continued)") {
			continued++
		}
	}
	require.Equal(t, 3, continued, "pages 2-4 carry the continuation header")
	require.True(t, rec.ContainsText("40 questions"), "page 1 carries the full header badge")
}

func containsSub(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestTrendsSectionNoQuestions(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &TrendsSection{style: st}
	require.NoError(t, sec.Draw(rec, cur, &models.EvaluationDataset{}))
	require.True(t, rec.ContainsText("No numeric questions available"))
	require.Equal(t, 1, rec.PageCount())
}

func TestTimelineSectionEmptySemesters(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &TimelineSection{style: st}
	start := cur.Y
	require.NoError(t, sec.Draw(rec, cur, &models.EvaluationDataset{}))

	require.True(t, rec.ContainsText("No semester data available"))
	require.Equal(t, 140.0, sec.Estimate(&models.EvaluationDataset{}), "empty timeline consumes its minimum height")
	require.Equal(t, start+140+st.SectionGap, cur.Y)
	require.Equal(t, 0, rec.CountPrefix("fillcircle"), "no point markers without data")
}

func TestTimelineSectionOrdersSemesters(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	ds := &models.EvaluationDataset{
		SemesterAverages: []models.SemesterAverage{
			{SemesterID: "2024-2", Average: 4.5, Count: 10},
			{SemesterID: "2023-1", Average: 3.0, Count: 8},
			{SemesterID: "2024-1", Average: 4.0, Count: 12},
		},
	}
	sec := &TimelineSection{style: st}
	require.NoError(t, sec.Draw(rec, cur, ds))

	// Labels must appear left to right in chronological order.
	var order []string
	for _, c := range rec.Commands {
		for _, id := range []string{"2023-1", "2024-1", "2024-2"} {
			if len(c) > 4 && c[:4] == "text" && containsSub(c, id) {
				order = append(order, id)
			}
		}
	}
	require.Equal(t, []string{"2023-1", "2024-1", "2024-2"}, order)
	require.Equal(t, 3, rec.CountPrefix("fillcircle"))
	require.GreaterOrEqual(t, rec.CountPrefix("line"), 6+2, "six grid lines plus the polyline")
}

func TestOverviewSectionNoData(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &OverviewSection{style: st}
	require.NoError(t, sec.Draw(rec, cur, &models.EvaluationDataset{}))
	require.True(t, rec.ContainsText("No evaluation responses available"))
}

func TestOverviewEstimateScalesWithCategories(t *testing.T) {
	sec := &OverviewSection{style: DefaultStyle()}

	empty := &models.EvaluationDataset{}
	require.Equal(t, 120.0, sec.Estimate(empty), "clamped to the minimum")

	ds := &models.EvaluationDataset{
		NumericResponses: []models.ResponseSet{numericSet("q1", 0, 1, 2, 3, 4, 5)},
	}
	require.Equal(t, 80.0+6*15, sec.Estimate(ds))
}

func TestTrendIndicatorNeedsTwoQuestions(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &TrendIndicatorSection{style: st}
	ds := &models.EvaluationDataset{
		NumericResponses: []models.ResponseSet{numericSet("q1", 4, 4)},
	}
	require.NoError(t, sec.Draw(rec, cur, ds))
	require.True(t, rec.ContainsText("Not enough data to compute a trend"))
}

func TestTrendIndicatorDirection(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &TrendIndicatorSection{style: st}
	ds := &models.EvaluationDataset{
		NumericResponses: []models.ResponseSet{
			numericSet("q1", 3, 3),
			numericSet("q2", 5, 5),
		},
	}
	require.NoError(t, sec.Draw(rec, cur, ds))
	require.True(t, rec.ContainsText("2.00"))
	require.True(t, rec.ContainsText("upward"))
}

func TestHistogramSkipsEmptyBuckets(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &HistogramSection{style: st}
	ds := &models.EvaluationDataset{
		NumericResponses: []models.ResponseSet{numericSet("q1", 5, 5, 3)},
	}
	require.NoError(t, sec.Draw(rec, cur, ds))

	require.True(t, rec.ContainsText("Score 5"))
	require.True(t, rec.ContainsText("Score 3"))
	require.False(t, rec.ContainsText("Score 2"))
}

func TestDistributionPrintsPercentages(t *testing.T) {
	st := DefaultStyle()
	rec := NewCommandRecorder(595.28, 841.89)
	rec.AddPage()
	cur := NewCursor(rec, st)

	sec := &DistributionSection{style: st}
	ds := &models.EvaluationDataset{
		NumericResponses: []models.ResponseSet{numericSet("q1", 5, 5, 4, 0)},
	}
	require.NoError(t, sec.Draw(rec, cur, ds))

	require.True(t, rec.ContainsText("50.0%"))
	require.True(t, rec.ContainsText("25.0%"))
	require.True(t, rec.ContainsText("N/A"))
}

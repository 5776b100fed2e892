package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
)

// TimelineSection plots the per-semester averages as a polyline with point
// markers, floating score labels and a 0-5 grid. Semesters render in
// chronological order regardless of input order.
type TimelineSection struct {
	style StyleConfig
}

func (sec *TimelineSection) Name() string { return "Historical Timeline" }

func (sec *TimelineSection) Estimate(ds *models.EvaluationDataset) float64 {
	h := 100 + float64(len(ds.SemesterAverages))*10
	if h < 140 {
		h = 140
	}
	return h
}

func (sec *TimelineSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	semesters := models.SortSemesters(ds.SemesterAverages)

	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), fmt.Sprintf("%d semesters", len(semesters)), height)

	if len(semesters) == 0 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "No semester data available")
		cur.Advance(height)
		return nil
	}

	// Plot area: left gutter for the Y axis, bottom gutter for semester
	// labels and the evaluation counts.
	gutterL := 34.0
	gutterB := 30.0
	plotX := x + gutterL
	plotW := w - gutterL
	plotY := y + 10
	plotH := height - st.HeaderBarHeight - 2*st.CardPadding - gutterB - 10

	// Y grid: six guide lines for scores 0 through 5.
	for score := 0; score <= 5; score++ {
		gy := plotY + plotH - float64(score)/5*plotH
		s.Line(plotX, gy, plotX+plotW, gy, st.GridLine, 0.4)
		s.Text(plotX-5, gy+3, fmt.Sprintf("%d", score), st.TinySize, WeightRegular, AlignRight, st.TextMuted)
	}
	s.RotatedText(x+8, plotY+plotH/2+20, "Average score", st.TinySize, WeightRegular, 90, st.TextMuted)

	pointX := func(i int) float64 {
		if len(semesters) == 1 {
			return plotX + plotW/2
		}
		return plotX + float64(i)/float64(len(semesters)-1)*plotW
	}
	pointY := func(score float64) float64 {
		return plotY + plotH - score/5*plotH
	}

	for i := 1; i < len(semesters); i++ {
		s.Line(pointX(i-1), pointY(semesters[i-1].Average), pointX(i), pointY(semesters[i].Average), st.Secondary, 1.2)
	}

	for i, sem := range semesters {
		px := pointX(i)
		py := pointY(sem.Average)
		s.FillCircle(px, py, 3, st.Primary)
		s.Text(px, py-6, fmt.Sprintf("%.1f", sem.Average), st.TinySize, WeightBold, AlignCenter, st.TextDark)

		label := sem.DisplayName
		if label == "" {
			label = sem.SemesterID
		}
		s.Text(px, plotY+plotH+12, label, st.TinySize, WeightRegular, AlignCenter, st.TextDark)
		s.Text(px, plotY+plotH+21, fmt.Sprintf("%d evals", sem.Count), st.TinySize, WeightRegular, AlignCenter, st.TextMuted)
	}

	cur.Advance(height)
	return nil
}

package render

import (
	"fmt"
	"math"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// TrendIndicatorSection compares the first and last numeric question's
// sentinel-excluding average and draws an up/down arrow with the absolute
// difference. It needs at least two numeric questions to say anything.
type TrendIndicatorSection struct {
	style StyleConfig
}

func (sec *TrendIndicatorSection) Name() string { return "Trend Indicator" }

func (sec *TrendIndicatorSection) Estimate(ds *models.EvaluationDataset) float64 {
	return 90
}

func (sec *TrendIndicatorSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), "", height)

	if len(ds.NumericResponses) < 2 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "Not enough data to compute a trend")
		cur.Advance(height)
		return nil
	}

	first := stats.Summarize(ds.NumericResponses[0].Numbers).Average
	last := stats.Summarize(ds.NumericResponses[len(ds.NumericResponses)-1].Numbers).Average
	diff := last - first

	arrowX := x + 20
	arrowTop := y + 8
	arrowBottom := y + 40
	color := st.Accent
	direction := "upward"
	if diff < 0 {
		color = st.Danger
		direction = "downward"
	}

	// Arrow drawn from primitives: shaft plus two head strokes.
	s.Line(arrowX, arrowBottom, arrowX, arrowTop, color, 2)
	if diff < 0 {
		s.Line(arrowX-6, arrowBottom-8, arrowX, arrowBottom, color, 2)
		s.Line(arrowX+6, arrowBottom-8, arrowX, arrowBottom, color, 2)
	} else {
		s.Line(arrowX-6, arrowTop+8, arrowX, arrowTop, color, 2)
		s.Line(arrowX+6, arrowTop+8, arrowX, arrowTop, color, 2)
	}

	s.Text(arrowX+18, y+20, fmt.Sprintf("%.2f", math.Abs(diff)), st.TitleSize, WeightBold, AlignLeft, color)
	s.Text(arrowX+18, y+36, fmt.Sprintf("%s between first and last question (%.2f to %.2f)", direction, first, last),
		st.SmallSize, WeightRegular, AlignLeft, st.TextMuted)

	cur.Advance(height)
	return nil
}

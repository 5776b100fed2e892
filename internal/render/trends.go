package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// TrendsSection draws one horizontal bar per numeric question, proportioned
// by its sentinel-excluding average on the 0-5 scale. The row count grows
// with the questionnaire, so this is the one section that can span multiple
// pages: rows are drawn in chunks sized to the remaining page budget, with a
// continuation header on every chunk after the first.
type TrendsSection struct {
	style StyleConfig
}

func (sec *TrendsSection) Name() string { return "Performance by Question" }

func (sec *TrendsSection) headerHeight() float64 {
	return sec.style.HeaderBarHeight + sec.style.CardPadding
}

func (sec *TrendsSection) Estimate(ds *models.EvaluationDataset) float64 {
	h := sec.headerHeight() + float64(len(ds.NumericResponses))*sec.style.TrendRowHeight + sec.style.CardPadding
	if h < 110 {
		h = 110
	}
	return h
}

func (sec *TrendsSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	rows := ds.NumericResponses
	rowH := st.TrendRowHeight
	headerH := sec.headerHeight()

	if len(rows) == 0 {
		height := sec.Estimate(ds)
		cur.EnsureRoom(s, height)
		x, y, w := drawContainer(s, st, cur.Y, sec.Name(), "", height)
		drawNoData(s, st, x, y, w, height-headerH-st.CardPadding, "No numeric questions available")
		cur.Advance(height)
		return nil
	}

	// Chunked draw: fill the remaining budget, break, continue under a
	// secondary header. Bounded by the total row count.
	drawn := 0
	for drawn < len(rows) {
		cur.EnsureRoom(s, headerH+rowH+st.CardPadding)
		fit := cur.RowsFit(headerH+st.CardPadding, rowH)
		if fit < 1 {
			fit = 1
		}
		n := len(rows) - drawn
		if n > fit {
			n = fit
		}
		chunkH := headerH + float64(n)*rowH + st.CardPadding

		var x, y, w float64
		if drawn == 0 {
			x, y, w = drawContainer(s, st, cur.Y, sec.Name(), fmt.Sprintf("%d questions", len(rows)), chunkH)
		} else {
			x, y, w = drawContinuedContainer(s, st, cur.Y, sec.Name(), chunkH)
		}

		for i := 0; i < n; i++ {
			sec.drawRow(s, rows[drawn+i], x, y+float64(i)*rowH, w)
		}

		cur.Advance(chunkH)
		drawn += n
	}
	return nil
}

func (sec *TrendsSection) drawRow(s Surface, set models.ResponseSet, x, y, w float64) {
	st := sec.style
	titleW := w * 0.5
	lines := s.SplitLines(set.Title, st.SmallSize, titleW)
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] += "..."
	}
	for i, line := range lines {
		s.Text(x, y+9+float64(i)*10, line, st.SmallSize, WeightRegular, AlignLeft, st.TextDark)
	}

	avg := stats.Summarize(set.Numbers).Average
	barX := x + titleW + 10
	track := w - titleW - 10 - 36
	barW := avg / 5 * track
	if barW < 0 {
		barW = 0
	}
	s.FillRect(barX, y+7, track, 9, st.White)
	s.FillRect(barX, y+7, barW, 9, st.Accent)
	s.Text(barX+track+4, y+14, fmt.Sprintf("%.2f", avg), st.SmallSize, WeightBold, AlignLeft, st.TextDark)
}

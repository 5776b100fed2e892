package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// OverviewSection draws the two-column score overview: a category/count list
// on the left and the four headline stat boxes on the right.
type OverviewSection struct {
	style StyleConfig
}

func (sec *OverviewSection) Name() string { return "Score Overview" }

func (sec *OverviewSection) Estimate(ds *models.EvaluationDataset) float64 {
	all := pooledNumeric(ds)
	active := len(stats.ActiveBuckets(stats.BucketCounts(all)))
	h := 80 + float64(active)*15
	if h < 120 {
		h = 120
	}
	return h
}

func (sec *OverviewSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	all := pooledNumeric(ds)
	counts := stats.BucketCounts(all)
	active := stats.ActiveBuckets(counts)
	summary := stats.Summarize(all)

	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), fmt.Sprintf("%d responses", summary.Total), height)

	if summary.Total == 0 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "No evaluation responses available")
		cur.Advance(height)
		return nil
	}

	// Left column: one row per non-empty category.
	colW := w * 0.45
	rowY := y + 4
	for _, bucket := range active {
		s.FillCircle(x+4, rowY+4, 3, st.Secondary)
		s.Text(x+12, rowY+7, bucketLabel(bucket), st.BodySize, WeightRegular, AlignLeft, st.TextDark)
		s.Text(x+colW-6, rowY+7, fmt.Sprintf("%d", counts[bucket]), st.BodySize, WeightBold, AlignRight, st.TextDark)
		rowY += st.RowHeight
	}

	// Right column: 2x2 stat boxes, value stacked over label.
	boxes := []struct {
		value string
		label string
	}{
		{fmt.Sprintf("%.2f", summary.Average), "Average"},
		{fmt.Sprintf("%.2f", summary.Median), "Median"},
		{fmt.Sprintf("%.1f - %.1f", summary.Min, summary.Max), "Range"},
		{fmt.Sprintf("%d", summary.Total), "Total"},
	}
	gridX := x + colW + st.CardPadding
	gridW := w - colW - st.CardPadding
	boxW := (gridW - 6) / 2
	boxH := 34.0
	for i, box := range boxes {
		bx := gridX + float64(i%2)*(boxW+6)
		by := y + float64(i/2)*(boxH+6)
		s.FillRect(bx, by, boxW, boxH, st.White)
		s.StrokeRect(bx, by, boxW, boxH, st.Border, 0.5)
		s.Text(bx+boxW/2, by+15, box.value, st.HeaderSize, WeightBold, AlignCenter, st.Primary)
		s.Text(bx+boxW/2, by+27, box.label, st.SmallSize, WeightRegular, AlignCenter, st.TextMuted)
	}

	cur.Advance(height)
	return nil
}

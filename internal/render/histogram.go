package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// HistogramSection draws one vertical bar per non-empty score bucket, scaled
// against the largest bucket count.
type HistogramSection struct {
	style StyleConfig
}

func (sec *HistogramSection) Name() string { return "Response Histogram" }

func (sec *HistogramSection) Estimate(ds *models.EvaluationDataset) float64 {
	all := pooledNumeric(ds)
	if len(stats.ActiveBuckets(stats.BucketCounts(all))) == 0 {
		return 110
	}
	return 190
}

func (sec *HistogramSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	all := pooledNumeric(ds)
	counts := stats.BucketCounts(all)
	active := stats.ActiveBuckets(counts)

	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), fmt.Sprintf("%d responses", len(all)), height)

	if len(active) == 0 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "No responses to chart")
		cur.Advance(height)
		return nil
	}

	maxCount := 0
	for _, bucket := range active {
		if counts[bucket] > maxCount {
			maxCount = counts[bucket]
		}
	}

	chartH := 110.0
	baseY := y + chartH
	s.Line(x, baseY, x+w, baseY, st.Border, 0.8)

	// Bars centered in evenly sized slots; spacing adapts to the number of
	// active buckets.
	slot := w / float64(len(active))
	barW := slot * 0.55
	for i, bucket := range active {
		count := counts[bucket]
		barH := float64(count) / float64(maxCount) * chartH
		bx := x + float64(i)*slot + (slot-barW)/2
		color := st.Secondary
		if bucket == 0 {
			color = st.TextMuted
		}
		s.FillRect(bx, baseY-barH, barW, barH, color)

		center := bx + barW/2
		s.Text(center, baseY+11, bucketLabel(bucket), st.SmallSize, WeightRegular, AlignCenter, st.TextDark)
		s.Text(center, baseY+21, fmt.Sprintf("(%d)", count), st.TinySize, WeightRegular, AlignCenter, st.TextMuted)
	}

	cur.Advance(height)
	return nil
}

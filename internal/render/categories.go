package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// CategoriesSection draws one progress-bar card per non-empty score bucket
// with its label, raw count and percentage share.
type CategoriesSection struct {
	style StyleConfig
}

func (sec *CategoriesSection) Name() string { return "Category Breakdown" }

const categoryCardHeight = 30.0

func (sec *CategoriesSection) Estimate(ds *models.EvaluationDataset) float64 {
	all := pooledNumeric(ds)
	active := len(stats.ActiveBuckets(stats.BucketCounts(all)))
	h := sec.style.HeaderBarHeight + 2*sec.style.CardPadding + float64(active)*(categoryCardHeight+6)
	if h < 120 {
		h = 120
	}
	return h
}

func (sec *CategoriesSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	all := pooledNumeric(ds)
	counts := stats.BucketCounts(all)
	active := stats.ActiveBuckets(counts)
	total := len(all)

	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), "", height)

	if total == 0 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "No category data available")
		cur.Advance(height)
		return nil
	}

	cardY := y
	for _, bucket := range active {
		count := counts[bucket]
		pct := stats.Percentage(count, total)

		s.FillRect(x, cardY, w, categoryCardHeight, st.White)
		s.StrokeRect(x, cardY, w, categoryCardHeight, st.Border, 0.5)

		s.Text(x+6, cardY+11, bucketLabel(bucket), st.BodySize, WeightBold, AlignLeft, st.TextDark)
		s.Text(x+w-6, cardY+11, fmt.Sprintf("%d responses", count), st.SmallSize, WeightRegular, AlignRight, st.TextMuted)

		track := w - 60
		s.FillRect(x+6, cardY+17, track, 7, st.Background)
		s.FillRect(x+6, cardY+17, pct/100*track, 7, st.Accent)
		s.Text(x+w-6, cardY+24, fmt.Sprintf("%.1f%%", pct), st.SmallSize, WeightBold, AlignRight, st.TextDark)

		cardY += categoryCardHeight + 6
	}

	cur.Advance(height)
	return nil
}

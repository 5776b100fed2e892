package render

import (
	"fmt"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// DistributionSection draws one horizontal bar per non-empty score category,
// proportioned by its share of the full response set.
type DistributionSection struct {
	style StyleConfig
}

func (sec *DistributionSection) Name() string { return "Score Distribution" }

func (sec *DistributionSection) Estimate(ds *models.EvaluationDataset) float64 {
	all := pooledNumeric(ds)
	active := len(stats.ActiveBuckets(stats.BucketCounts(all)))
	h := 70 + float64(active)*18
	if h < 110 {
		h = 110
	}
	return h
}

func (sec *DistributionSection) Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error {
	st := sec.style
	all := pooledNumeric(ds)
	counts := stats.BucketCounts(all)
	active := stats.ActiveBuckets(counts)
	total := len(all)

	height := sec.Estimate(ds)
	cur.EnsureRoom(s, height)
	x, y, w := drawContainer(s, st, cur.Y, sec.Name(), fmt.Sprintf("%d categories", len(active)), height)

	if total == 0 {
		drawNoData(s, st, x, y, w, height-st.HeaderBarHeight-2*st.CardPadding, "No responses to distribute")
		cur.Advance(height)
		return nil
	}

	labelW := 50.0
	pctW := 45.0
	track := w - labelW - pctW
	rowY := y + 4
	for _, bucket := range active {
		pct := stats.Percentage(counts[bucket], total)
		barW := pct / 100 * track

		s.Text(x, rowY+8, bucketLabel(bucket), st.BodySize, WeightRegular, AlignLeft, st.TextDark)
		s.FillRect(x+labelW, rowY, track, 11, st.White)
		s.FillRect(x+labelW, rowY, barW, 11, st.Secondary)
		s.Text(x+labelW+barW+4, rowY+8, fmt.Sprintf("%.1f%%", pct), st.SmallSize, WeightBold, AlignLeft, st.TextDark)
		rowY += 18
	}

	cur.Advance(height)
	return nil
}

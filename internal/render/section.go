package render

import (
	"github.com/noah-isme/eval-report-engine/internal/models"
)

// Section is one stateless chart renderer. Estimate must be a pure function
// of the dataset so the container can be sized before any drawing happens;
// Draw reserves room through the cursor, paints a titled container and the
// visualization, then advances the cursor past it.
type Section interface {
	Name() string
	Estimate(ds *models.EvaluationDataset) float64
	Draw(s Surface, cur *Cursor, ds *models.EvaluationDataset) error
}

// ChartSections returns the renderers in their fixed document order.
func ChartSections(st StyleConfig) []Section {
	return []Section{
		&OverviewSection{style: st},
		&DistributionSection{style: st},
		&TrendsSection{style: st},
		&HistogramSection{style: st},
		&CategoriesSection{style: st},
		&TimelineSection{style: st},
		&TrendIndicatorSection{style: st},
	}
}

// drawContainer paints the shared section chrome: background card, border and
// the header bar with the section title and an optional right-aligned badge.
// It returns the content origin and width inside the card padding.
func drawContainer(s Surface, st StyleConfig, y float64, title, badge string, height float64) (float64, float64, float64) {
	x := st.MarginLeft
	w := st.ContentWidth(s)

	s.FillRect(x, y, w, height, st.Background)
	s.StrokeRect(x, y, w, height, st.Border, 0.5)

	s.FillRect(x, y, w, st.HeaderBarHeight, st.Primary)
	titleSize := st.HeaderSize
	if s.TextWidth(title, titleSize) > w*0.6 {
		titleSize = st.BodySize
	}
	s.Text(x+st.CardPadding, y+st.HeaderBarHeight-7, title, titleSize, WeightBold, AlignLeft, st.White)
	if badge != "" {
		s.Text(x+w-st.CardPadding, y+st.HeaderBarHeight-7, badge, st.SmallSize, WeightRegular, AlignRight, st.White)
	}

	return x + st.CardPadding, y + st.HeaderBarHeight + st.CardPadding, w - 2*st.CardPadding
}

// drawContinuedContainer paints the secondary header variant used when a
// section spans onto another page: same title with a continuation note,
// muted weight, no badge.
func drawContinuedContainer(s Surface, st StyleConfig, y float64, title string, height float64) (float64, float64, float64) {
	x := st.MarginLeft
	w := st.ContentWidth(s)

	s.FillRect(x, y, w, height, st.Background)
	s.StrokeRect(x, y, w, height, st.Border, 0.5)

	s.Text(x+st.CardPadding, y+st.HeaderBarHeight-7, title+" (continued)", st.BodySize, WeightRegular, AlignLeft, st.TextMuted)
	s.Line(x, y+st.HeaderBarHeight, x+w, y+st.HeaderBarHeight, st.Border, 0.5)

	return x + st.CardPadding, y + st.HeaderBarHeight + st.CardPadding, w - 2*st.CardPadding
}

// drawNoData centers a placeholder message in the content area instead of
// drawing degenerate geometry.
func drawNoData(s Surface, st StyleConfig, x, y, w, h float64, msg string) {
	s.Text(x+w/2, y+h/2, msg, st.BodySize, WeightRegular, AlignCenter, st.TextMuted)
}

// bucketLabel names a score bucket; bucket 0 is the "not applicable"
// sentinel.
func bucketLabel(bucket int) string {
	if bucket == 0 {
		return "N/A"
	}
	return "Score " + string(rune('0'+bucket))
}

// pooledNumeric flattens every numeric response of the dataset.
func pooledNumeric(ds *models.EvaluationDataset) []float64 {
	var all []float64
	for _, set := range ds.NumericResponses {
		all = append(all, set.Numbers...)
	}
	return all
}

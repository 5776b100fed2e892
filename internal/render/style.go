package render

// StyleConfig carries every color, font size and layout constant used by the
// renderers. It is immutable by convention and injected explicitly into the
// Composer and each Section; there is no package-level style state.
type StyleConfig struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	SectionGap   float64

	Primary   Color
	Secondary Color
	Accent    Color
	Warning   Color
	Danger    Color

	Background Color
	Border     Color
	GridLine   Color
	TextDark   Color
	TextMuted  Color
	White      Color

	TitleSize  float64
	HeaderSize float64
	BodySize   float64
	SmallSize  float64
	TinySize   float64

	HeaderBarHeight float64
	RowHeight       float64
	TrendRowHeight  float64
	CardPadding     float64
	LineHeight      float64
}

// DefaultStyle returns the stock report theme. Dimensions are in points on an
// A4 portrait page.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		MarginLeft:   40,
		MarginRight:  40,
		MarginTop:    50,
		MarginBottom: 50,
		SectionGap:   14,

		Primary:   Color{R: 30, G: 58, B: 95},
		Secondary: Color{R: 52, G: 152, B: 219},
		Accent:    Color{R: 46, G: 204, B: 113},
		Warning:   Color{R: 241, G: 196, B: 15},
		Danger:    Color{R: 231, G: 76, B: 60},

		Background: Color{R: 248, G: 249, B: 250},
		Border:     Color{R: 220, G: 220, B: 220},
		GridLine:   Color{R: 225, G: 228, B: 232},
		TextDark:   Color{R: 44, G: 62, B: 80},
		TextMuted:  Color{R: 127, G: 140, B: 141},
		White:      Color{R: 255, G: 255, B: 255},

		TitleSize:  18,
		HeaderSize: 12,
		BodySize:   10,
		SmallSize:  8.5,
		TinySize:   7,

		HeaderBarHeight: 22,
		RowHeight:       15,
		TrendRowHeight:  26,
		CardPadding:     8,
		LineHeight:      12,
	}
}

// ContentWidth is the usable width between the horizontal margins.
func (st StyleConfig) ContentWidth(s Surface) float64 {
	w, _ := s.PageSize()
	return w - st.MarginLeft - st.MarginRight
}

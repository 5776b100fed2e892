package render

import "io"

// Color is an RGB triple in 0..255 space.
type Color struct {
	R, G, B int
}

// FontWeight selects the face style used for a text run.
type FontWeight string

const (
	WeightRegular FontWeight = ""
	WeightBold    FontWeight = "B"
)

// Align positions a text run relative to its anchor X.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Surface is the drawing capability the engine renders against. It is the
// only coupling to a concrete PDF backend; any implementation of this
// interface (including a command recorder in tests) is usable. The engine
// never holds pixel buffers, it only emits calls against this contract.
type Surface interface {
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color, lineWidth float64)
	FillCircle(cx, cy, r float64, c Color)
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	Text(x, y float64, text string, size float64, weight FontWeight, align Align, c Color)
	RotatedText(x, y float64, text string, size float64, weight FontWeight, angle float64, c Color)
	TextWidth(text string, size float64) float64
	SplitLines(text string, size, maxWidth float64) []string

	AddPage()
	PageSize() (w, h float64)
	PageCount() int
	SetPage(index int)

	SetMetadata(title, author, subject string)
	Output(w io.Writer) error
	Save(filename string) error
}

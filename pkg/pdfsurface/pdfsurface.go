// Package pdfsurface implements the render.Surface capability on top of
// gofpdf. It is the only place that knows about the concrete PDF backend.
package pdfsurface

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/noah-isme/eval-report-engine/internal/render"
)

const fontFamily = "Arial"

// PDFSurface adapts a gofpdf document to the engine's drawing contract.
// Coordinates are in points on an A4 portrait page. Automatic page breaking
// is disabled: the engine owns pagination through its cursor.
type PDFSurface struct {
	pdf *gofpdf.Fpdf
}

// New creates an empty A4 portrait document. No page is added; the composer
// emits the first AddPage itself.
func New() *PDFSurface {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &PDFSurface{pdf: pdf}
}

func (s *PDFSurface) FillRect(x, y, w, h float64, c render.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *PDFSurface) StrokeRect(x, y, w, h float64, c render.Color, lineWidth float64) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *PDFSurface) FillCircle(cx, cy, r float64, c render.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
	s.pdf.Circle(cx, cy, r, "F")
}

func (s *PDFSurface) Line(x1, y1, x2, y2 float64, c render.Color, width float64) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

// Text draws a run anchored at the baseline point (x, y). Center and right
// alignment shift the anchor by the measured width.
func (s *PDFSurface) Text(x, y float64, text string, size float64, weight render.FontWeight, align render.Align, c render.Color) {
	s.pdf.SetFont(fontFamily, string(weight), size)
	s.pdf.SetTextColor(c.R, c.G, c.B)
	switch align {
	case render.AlignCenter:
		x -= s.pdf.GetStringWidth(text) / 2
	case render.AlignRight:
		x -= s.pdf.GetStringWidth(text)
	}
	s.pdf.Text(x, y, text)
}

func (s *PDFSurface) RotatedText(x, y float64, text string, size float64, weight render.FontWeight, angle float64, c render.Color) {
	s.pdf.SetFont(fontFamily, string(weight), size)
	s.pdf.SetTextColor(c.R, c.G, c.B)
	s.pdf.TransformBegin()
	s.pdf.TransformRotate(angle, x, y)
	s.pdf.Text(x, y, text)
	s.pdf.TransformEnd()
}

func (s *PDFSurface) TextWidth(text string, size float64) float64 {
	s.pdf.SetFont(fontFamily, "", size)
	return s.pdf.GetStringWidth(text)
}

func (s *PDFSurface) SplitLines(text string, size, maxWidth float64) []string {
	s.pdf.SetFont(fontFamily, "", size)
	lines := s.pdf.SplitText(text, maxWidth)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *PDFSurface) PageSize() (float64, float64) {
	w, h := s.pdf.GetPageSize()
	return w, h
}

func (s *PDFSurface) PageCount() int {
	return s.pdf.PageCount()
}

func (s *PDFSurface) SetPage(index int) {
	s.pdf.SetPage(index)
}

func (s *PDFSurface) SetMetadata(title, author, subject string) {
	s.pdf.SetTitle(title, true)
	s.pdf.SetAuthor(author, true)
	s.pdf.SetSubject(subject, true)
}

// Output writes the finished document to w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// Save writes the finished document to a file path.
func (s *PDFSurface) Save(filename string) error {
	if err := s.pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("save pdf: %w", err)
	}
	return nil
}

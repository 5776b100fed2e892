package render

import (
	"fmt"
	"io"
	"strings"
)

// CommandRecorder is a Surface that records every drawing call as a formatted
// command line instead of producing output. It backs the determinism and
// paging tests and doubles as a reference for what a custom backend must
// implement. Text measurement is approximated from rune counts so recorded
// layouts stay stable across environments.
type CommandRecorder struct {
	Width  float64
	Height float64

	Commands []string
	pages    int
}

// NewCommandRecorder builds a recorder with the given page size in points.
func NewCommandRecorder(width, height float64) *CommandRecorder {
	return &CommandRecorder{Width: width, Height: height}
}

func (r *CommandRecorder) record(format string, args ...interface{}) {
	r.Commands = append(r.Commands, fmt.Sprintf(format, args...))
}

func (r *CommandRecorder) FillRect(x, y, w, h float64, c Color) {
	r.record("fillrect %.2f %.2f %.2f %.2f #%02x%02x%02x", x, y, w, h, c.R, c.G, c.B)
}

func (r *CommandRecorder) StrokeRect(x, y, w, h float64, c Color, lineWidth float64) {
	r.record("strokerect %.2f %.2f %.2f %.2f #%02x%02x%02x %.2f", x, y, w, h, c.R, c.G, c.B, lineWidth)
}

func (r *CommandRecorder) FillCircle(cx, cy, radius float64, c Color) {
	r.record("fillcircle %.2f %.2f %.2f #%02x%02x%02x", cx, cy, radius, c.R, c.G, c.B)
}

func (r *CommandRecorder) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r.record("line %.2f %.2f %.2f %.2f #%02x%02x%02x %.2f", x1, y1, x2, y2, c.R, c.G, c.B, width)
}

func (r *CommandRecorder) Text(x, y float64, text string, size float64, weight FontWeight, align Align, c Color) {
	r.record("text %.2f %.2f %q %.1f %q %s #%02x%02x%02x", x, y, text, size, string(weight), align, c.R, c.G, c.B)
}

func (r *CommandRecorder) RotatedText(x, y float64, text string, size float64, weight FontWeight, angle float64, c Color) {
	r.record("rtext %.2f %.2f %q %.1f %q %.1f #%02x%02x%02x", x, y, text, size, string(weight), angle, c.R, c.G, c.B)
}

// TextWidth approximates half the font size per rune, which tracks gofpdf's
// Arial metrics closely enough for layout tests.
func (r *CommandRecorder) TextWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

func (r *CommandRecorder) SplitLines(text string, size, maxWidth float64) []string {
	if maxWidth <= 0 || r.TextWidth(text, size) <= maxWidth {
		return []string{text}
	}
	perLine := int(maxWidth / (size * 0.5))
	if perLine < 1 {
		perLine = 1
	}
	runes := []rune(text)
	var lines []string
	for len(runes) > 0 {
		n := perLine
		if n > len(runes) {
			n = len(runes)
		}
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	return lines
}

func (r *CommandRecorder) AddPage() {
	r.pages++
	r.record("addpage %d", r.pages)
}

func (r *CommandRecorder) PageSize() (float64, float64) {
	return r.Width, r.Height
}

func (r *CommandRecorder) PageCount() int { return r.pages }

func (r *CommandRecorder) SetPage(index int) {
	r.record("setpage %d", index)
}

func (r *CommandRecorder) SetMetadata(title, author, subject string) {
	r.record("metadata %q %q %q", title, author, subject)
}

func (r *CommandRecorder) Output(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(r.Commands, "\n"))
	return err
}

func (r *CommandRecorder) Save(filename string) error {
	r.record("save %q", filename)
	return nil
}

// CountPrefix returns how many recorded commands start with the prefix.
func (r *CommandRecorder) CountPrefix(prefix string) int {
	n := 0
	for _, c := range r.Commands {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// ContainsText reports whether any text command carries the given substring.
func (r *CommandRecorder) ContainsText(sub string) bool {
	for _, c := range r.Commands {
		if (strings.HasPrefix(c, "text") || strings.HasPrefix(c, "rtext")) && strings.Contains(c, sub) {
			return true
		}
	}
	return false
}

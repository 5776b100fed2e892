package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/stats"
)

// Composer orchestrates the full document: the fixed section order, the
// inter-section spacing and the trailing footer pass. Rendering is a single
// synchronous forward pass over the dataset; the only mutable state is the
// Cursor created per call, so the same dataset and surface always yield the
// same command stream.
type Composer struct {
	style   StyleConfig
	caption string
	log     *zap.Logger
}

// NewComposer builds a composer. caption is the fixed institutional line
// drawn in every page footer.
func NewComposer(st StyleConfig, caption string, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{style: st, caption: caption, log: logger}
}

// Render draws the entire report onto the surface. Chart section failures
// are degraded to diagnostic placeholder blocks; the document is always
// produced.
func (c *Composer) Render(s Surface, ds *models.EvaluationDataset) error {
	title := "Professor Evaluation Report"
	if ds.Meta.ProfessorName != "" {
		title = fmt.Sprintf("Evaluation Report - %s", ds.Meta.ProfessorName)
	}
	s.SetMetadata(title, ds.Meta.Institution, ds.Meta.SubjectName)

	s.AddPage()
	cur := NewCursor(s, c.style)

	c.drawHeaderBand(s, cur, ds)
	c.drawMetadataBox(s, cur, ds)
	c.drawExecutiveSummary(s, cur, ds)
	c.drawComments(s, cur, ds)

	for _, sec := range ChartSections(c.style) {
		c.renderSection(s, cur, sec, ds)
	}

	c.drawStudentListing(s, cur, ds)
	c.drawAutoevaluations(s, cur, ds)
	c.drawCoevaluations(s, cur, ds)

	c.drawFooters(s)
	return nil
}

// renderSection runs one chart renderer and substitutes the diagnostic
// placeholder when it fails. A partially broken report beats no report.
func (c *Composer) renderSection(s Surface, cur *Cursor, sec Section, ds *models.EvaluationDataset) {
	if err := drawSafely(sec, s, cur, ds); err != nil {
		c.log.Warn("section render failed",
			zap.String("section", sec.Name()),
			zap.Error(err))
		c.drawDiagnostic(s, cur, sec.Name())
	}
}

func drawSafely(sec Section, s Surface, cur *Cursor, ds *models.EvaluationDataset) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("section %s panicked: %v", sec.Name(), r)
		}
	}()
	return sec.Draw(s, cur, ds)
}

const diagnosticHeight = 64.0

func (c *Composer) drawDiagnostic(s Surface, cur *Cursor, name string) {
	st := c.style
	cur.EnsureRoom(s, diagnosticHeight)
	x := st.MarginLeft
	w := st.ContentWidth(s)
	s.FillRect(x, cur.Y, w, diagnosticHeight, st.Background)
	s.StrokeRect(x, cur.Y, w, diagnosticHeight, st.Danger, 1)
	s.Text(x+w/2, cur.Y+28, fmt.Sprintf("%s could not be rendered", name), st.BodySize, WeightBold, AlignCenter, st.Danger)
	s.Text(x+w/2, cur.Y+44, "The rest of the report is unaffected.", st.SmallSize, WeightRegular, AlignCenter, st.TextMuted)
	cur.Advance(diagnosticHeight)
}

func (c *Composer) drawHeaderBand(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	st := c.style
	w, _ := s.PageSize()
	bandH := 64.0
	s.FillRect(0, 0, w, bandH, st.Primary)
	if ds.Meta.Institution != "" {
		s.Text(w/2, 20, ds.Meta.Institution, st.SmallSize, WeightRegular, AlignCenter, st.White)
	}
	s.Text(w/2, 44, "Professor Evaluation Report", st.TitleSize, WeightBold, AlignCenter, st.White)
	cur.Y = bandH + st.SectionGap
}

func (c *Composer) drawMetadataBox(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	st := c.style
	rows := [][2]string{
		{"Professor", ds.Meta.ProfessorName},
		{"Subject", ds.Meta.SubjectName},
		{"Period", ds.Meta.Period},
		{"Report date", ds.Meta.ReportDate},
	}
	height := 2*st.CardPadding + float64(len(rows))*st.LineHeight + 4
	cur.EnsureRoom(s, height)

	x := st.MarginLeft
	w := st.ContentWidth(s)
	s.FillRect(x, cur.Y, w, height, st.White)
	s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

	rowY := cur.Y + st.CardPadding + 8
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		s.Text(x+st.CardPadding, rowY, row[0], st.BodySize, WeightBold, AlignLeft, st.TextDark)
		s.Text(x+110, rowY, value, st.BodySize, WeightRegular, AlignLeft, st.TextDark)
		rowY += st.LineHeight
	}
	cur.Advance(height)
}

func (c *Composer) drawExecutiveSummary(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	st := c.style
	summary := stats.Summarize(pooledNumeric(ds))

	height := 56.0
	cur.EnsureRoom(s, height)
	x := st.MarginLeft
	w := st.ContentWidth(s)

	boxes := []struct {
		value string
		label string
	}{
		{fmt.Sprintf("%.2f", summary.Average), "Average rating"},
		{fmt.Sprintf("%d", summary.Total), "Evaluations"},
		{fmt.Sprintf("%d", len(ds.Comments)), "Comments"},
	}
	boxW := (w - 2*10) / 3
	for i, box := range boxes {
		bx := x + float64(i)*(boxW+10)
		s.FillRect(bx, cur.Y, boxW, height, st.Background)
		s.StrokeRect(bx, cur.Y, boxW, height, st.Border, 0.5)
		s.Text(bx+boxW/2, cur.Y+26, box.value, st.TitleSize, WeightBold, AlignCenter, st.Primary)
		s.Text(bx+boxW/2, cur.Y+42, box.label, st.SmallSize, WeightRegular, AlignCenter, st.TextMuted)
	}
	cur.Advance(height)
}

// drawListHeading paints a plain heading with an underline for the listing
// passes that follow the chart sections.
func (c *Composer) drawListHeading(s Surface, cur *Cursor, title string) {
	st := c.style
	cur.EnsureRoom(s, 30)
	x := st.MarginLeft
	w := st.ContentWidth(s)
	s.Text(x, cur.Y+12, title, st.HeaderSize, WeightBold, AlignLeft, st.Primary)
	s.Line(x, cur.Y+17, x+w, cur.Y+17, st.Secondary, 1)
	cur.Y += 26
}

func (c *Composer) drawComments(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	if len(ds.Comments) == 0 {
		return
	}
	st := c.style
	c.drawListHeading(s, cur, "Student Comments")

	x := st.MarginLeft
	w := st.ContentWidth(s)
	for _, comment := range ds.Comments {
		lines := s.SplitLines(comment.Text, st.BodySize, w-2*st.CardPadding)
		attribution := ""
		if comment.Author != "" || comment.Date != "" {
			attribution = fmt.Sprintf("%s %s", comment.Author, comment.Date)
		}
		height := 2*st.CardPadding + float64(len(lines))*st.LineHeight
		if attribution != "" {
			height += st.LineHeight
		}

		cur.EnsureRoom(s, height)
		s.FillRect(x, cur.Y, w, height, st.White)
		s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

		lineY := cur.Y + st.CardPadding + 8
		if attribution != "" {
			s.Text(x+st.CardPadding, lineY, attribution, st.SmallSize, WeightBold, AlignLeft, st.TextMuted)
			lineY += st.LineHeight
		}
		for _, line := range lines {
			s.Text(x+st.CardPadding, lineY, line, st.BodySize, WeightRegular, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		cur.Y += height + 6
	}
	cur.Y += st.SectionGap - 6
}

func (c *Composer) drawStudentListing(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	if len(ds.NumericResponses) == 0 && len(ds.TextResponses) == 0 {
		return
	}
	st := c.style
	c.drawListHeading(s, cur, "Student Evaluation Detail")

	x := st.MarginLeft
	w := st.ContentWidth(s)

	for _, set := range ds.NumericResponses {
		titleLines := s.SplitLines(set.Title, st.BodySize, w-2*st.CardPadding)
		summary := stats.Summarize(set.Numbers)
		valueLines := s.SplitLines(formatNumericResponses(set.Numbers), st.SmallSize, w-2*st.CardPadding)

		height := 2*st.CardPadding + float64(len(titleLines)+1+len(valueLines))*st.LineHeight
		cur.EnsureRoom(s, height)
		s.FillRect(x, cur.Y, w, height, st.White)
		s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

		lineY := cur.Y + st.CardPadding + 8
		for _, line := range titleLines {
			s.Text(x+st.CardPadding, lineY, line, st.BodySize, WeightBold, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		s.Text(x+st.CardPadding, lineY,
			fmt.Sprintf("Average %.2f - Median %.2f - %d responses", summary.Average, summary.Median, summary.Total),
			st.SmallSize, WeightRegular, AlignLeft, st.TextMuted)
		lineY += st.LineHeight
		for _, line := range valueLines {
			s.Text(x+st.CardPadding, lineY, line, st.SmallSize, WeightRegular, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		cur.Y += height + 6
	}

	for _, set := range ds.TextResponses {
		titleLines := s.SplitLines(set.Title, st.BodySize, w-2*st.CardPadding)
		var answerLines []string
		for _, answer := range set.Texts {
			answerLines = append(answerLines, s.SplitLines("- "+answer, st.SmallSize, w-2*st.CardPadding)...)
		}
		if len(answerLines) == 0 {
			answerLines = []string{"No answers recorded"}
		}

		height := 2*st.CardPadding + float64(len(titleLines)+len(answerLines))*st.LineHeight
		cur.EnsureRoom(s, height)
		s.FillRect(x, cur.Y, w, height, st.White)
		s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

		lineY := cur.Y + st.CardPadding + 8
		for _, line := range titleLines {
			s.Text(x+st.CardPadding, lineY, line, st.BodySize, WeightBold, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		for _, line := range answerLines {
			s.Text(x+st.CardPadding, lineY, line, st.SmallSize, WeightRegular, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		cur.Y += height + 6
	}
	cur.Y += st.SectionGap - 6
}

func (c *Composer) drawAutoevaluations(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	if len(ds.Autoevaluations) == 0 {
		return
	}
	st := c.style
	c.drawListHeading(s, cur, "Autoevaluation by Semester")

	x := st.MarginLeft
	w := st.ContentWidth(s)

	for _, group := range ds.Autoevaluations {
		label := group.DisplayName
		if label == "" {
			label = group.SemesterID
		}
		type wrapped struct {
			question []string
			answer   []string
		}
		var answers []wrapped
		lineCount := 1
		for _, a := range group.Answers {
			wr := wrapped{
				question: s.SplitLines(a.Question, st.SmallSize, w-2*st.CardPadding-10),
				answer:   s.SplitLines(a.Answer, st.BodySize, w-2*st.CardPadding-10),
			}
			answers = append(answers, wr)
			lineCount += len(wr.question) + len(wr.answer)
		}

		height := 2*st.CardPadding + float64(lineCount)*st.LineHeight + float64(len(answers))*4
		cur.EnsureRoom(s, height)
		s.FillRect(x, cur.Y, w, height, st.White)
		s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

		lineY := cur.Y + st.CardPadding + 8
		s.Text(x+st.CardPadding, lineY, label, st.BodySize, WeightBold, AlignLeft, st.Primary)
		lineY += st.LineHeight
		for _, wr := range answers {
			for _, line := range wr.question {
				s.Text(x+st.CardPadding+10, lineY, line, st.SmallSize, WeightRegular, AlignLeft, st.TextMuted)
				lineY += st.LineHeight
			}
			for _, line := range wr.answer {
				s.Text(x+st.CardPadding+10, lineY, line, st.BodySize, WeightRegular, AlignLeft, st.TextDark)
				lineY += st.LineHeight
			}
			lineY += 4
		}
		cur.Y += height + 6
	}
	cur.Y += st.SectionGap - 6
}

func (c *Composer) drawCoevaluations(s Surface, cur *Cursor, ds *models.EvaluationDataset) {
	if len(ds.Coevaluations) == 0 {
		return
	}
	st := c.style
	c.drawListHeading(s, cur, "Institutional Coevaluation")

	x := st.MarginLeft
	w := st.ContentWidth(s)

	for _, rec := range ds.Coevaluations {
		header := rec.SemesterID
		if rec.Evaluator != "" {
			header = fmt.Sprintf("%s - %s", header, rec.Evaluator)
		}
		if rec.Date != "" {
			header = fmt.Sprintf("%s - %s", header, rec.Date)
		}
		findingLines := s.SplitLines(rec.Findings, st.BodySize, w-2*st.CardPadding-10)
		planLines := s.SplitLines(rec.Plan, st.BodySize, w-2*st.CardPadding-10)

		height := 2*st.CardPadding + float64(3+len(findingLines)+len(planLines))*st.LineHeight + 8
		cur.EnsureRoom(s, height)
		s.FillRect(x, cur.Y, w, height, st.White)
		s.StrokeRect(x, cur.Y, w, height, st.Border, 0.5)

		lineY := cur.Y + st.CardPadding + 8
		s.Text(x+st.CardPadding, lineY, header, st.BodySize, WeightBold, AlignLeft, st.Primary)
		lineY += st.LineHeight

		s.Text(x+st.CardPadding, lineY, "Findings", st.SmallSize, WeightBold, AlignLeft, st.TextMuted)
		lineY += st.LineHeight
		for _, line := range findingLines {
			s.Text(x+st.CardPadding+10, lineY, line, st.BodySize, WeightRegular, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		lineY += 4

		s.Text(x+st.CardPadding, lineY, "Improvement plan", st.SmallSize, WeightBold, AlignLeft, st.TextMuted)
		lineY += st.LineHeight
		for _, line := range planLines {
			s.Text(x+st.CardPadding+10, lineY, line, st.BodySize, WeightRegular, AlignLeft, st.TextDark)
			lineY += st.LineHeight
		}
		cur.Y += height + 6
	}
}

// drawFooters is the trailing pass over every emitted page: the total page
// count is only known once content generation is done.
func (c *Composer) drawFooters(s Surface) {
	st := c.style
	w, h := s.PageSize()
	total := s.PageCount()
	for i := 1; i <= total; i++ {
		s.SetPage(i)
		s.Text(w/2, h-st.MarginBottom+18, fmt.Sprintf("Page %d of %d", i, total), st.SmallSize, WeightRegular, AlignCenter, st.TextMuted)
		if c.caption != "" {
			s.Text(w/2, h-st.MarginBottom+29, c.caption, st.TinySize, WeightRegular, AlignCenter, st.TextMuted)
		}
	}
}

func formatNumericResponses(numbers []float64) string {
	if len(numbers) == 0 {
		return "No answers recorded"
	}
	out := "Responses: "
	for i, v := range numbers {
		if i > 0 {
			out += ", "
		}
		if v == 0 {
			out += "N/A"
		} else {
			out += fmt.Sprintf("%.0f", v)
		}
	}
	return out
}

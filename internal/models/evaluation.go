package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResponseKind discriminates the tagged ResponseSet variant.
type ResponseKind string

const (
	ResponseKindNumeric ResponseKind = "numeric"
	ResponseKindText    ResponseKind = "text"
)

// ResponseSet holds every collected response for a single evaluated question.
// Numeric sets may contain the value 0, which means "not applicable": it is
// excluded from average/median/min/max but counted in distributions.
type ResponseSet struct {
	QuestionID string       `json:"questionId" validate:"required"`
	Title      string       `json:"title" validate:"required"`
	Kind       ResponseKind `json:"kind" validate:"required,oneof=numeric text"`
	Numbers    []float64    `json:"numbers,omitempty"`
	Texts      []string     `json:"texts,omitempty"`
}

// SemesterAverage is one point of the historical score timeline.
type SemesterAverage struct {
	SemesterID  string  `json:"semesterId" validate:"required"`
	Average     float64 `json:"average" validate:"gte=0,lte=5"`
	Count       int     `json:"count" validate:"gte=0"`
	DisplayName string  `json:"displayName"`
}

// FeedbackComment is one free-text feedback item shown as a card.
type FeedbackComment struct {
	Author string `json:"author"`
	Date   string `json:"date"`
	Text   string `json:"text" validate:"required"`
}

// AutoevalAnswer is a single question/answer pair inside a semester group.
type AutoevalAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AutoevaluationGroup bundles the professor's self-evaluation answers for one
// semester.
type AutoevaluationGroup struct {
	SemesterID  string           `json:"semesterId" validate:"required"`
	DisplayName string           `json:"displayName"`
	Answers     []AutoevalAnswer `json:"answers"`
}

// CoevaluationRecord is one institutional coevaluation with its findings and
// improvement plan text.
type CoevaluationRecord struct {
	SemesterID string `json:"semesterId"`
	Evaluator  string `json:"evaluator"`
	Date       string `json:"date"`
	Findings   string `json:"findings"`
	Plan       string `json:"plan"`
}

// ReportMeta carries the opaque header metadata. It is rendered as text only,
// never computed over.
type ReportMeta struct {
	ProfessorName string `json:"professorName"`
	SubjectName   string `json:"subjectName"`
	Period        string `json:"period"`
	ReportDate    string `json:"reportDate"`
	Institution   string `json:"institution"`
}

// EvaluationDataset is the engine input. The upstream aggregation layer is
// expected to hand it over already filtered and joined; the engine validates
// the shape once at this boundary and never re-checks internally.
type EvaluationDataset struct {
	Meta             ReportMeta            `json:"meta"`
	NumericResponses []ResponseSet         `json:"numericResponses" validate:"dive"`
	TextResponses    []ResponseSet         `json:"textResponses" validate:"dive"`
	SemesterAverages []SemesterAverage     `json:"semesterAverages" validate:"dive"`
	Comments         []FeedbackComment     `json:"comments" validate:"dive"`
	Autoevaluations  []AutoevaluationGroup `json:"autoevaluations" validate:"dive"`
	Coevaluations    []CoevaluationRecord  `json:"coevaluations" validate:"dive"`
}

var validate = validator.New()

// Validate checks the dataset shape at the engine boundary. Numeric sets must
// carry numbers only and text sets strings only, so the renderers can trust
// the tagged variant without defensive re-checks.
func (d *EvaluationDataset) Validate() error {
	if d == nil {
		return fmt.Errorf("dataset is nil")
	}
	if err := validate.Struct(d); err != nil {
		return err
	}
	for _, set := range d.NumericResponses {
		if set.Kind != ResponseKindNumeric {
			return fmt.Errorf("question %s: expected numeric kind, got %s", set.QuestionID, set.Kind)
		}
		if len(set.Texts) > 0 {
			return fmt.Errorf("question %s: numeric set carries text responses", set.QuestionID)
		}
	}
	for _, set := range d.TextResponses {
		if set.Kind != ResponseKindText {
			return fmt.Errorf("question %s: expected text kind, got %s", set.QuestionID, set.Kind)
		}
		if len(set.Numbers) > 0 {
			return fmt.Errorf("question %s: text set carries numeric responses", set.QuestionID)
		}
	}
	return nil
}

// semesterKey decomposes a "2024-1" style id into sortable parts. Unparsable
// ids sort after every parsable one, lexically among themselves.
func semesterKey(id string) (year, half int, ok bool) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return y, h, true
}

// SortSemesters returns the averages in chronological order (year, then half)
// without mutating the input slice.
func SortSemesters(in []SemesterAverage) []SemesterAverage {
	out := make([]SemesterAverage, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		yi, hi, oki := semesterKey(out[i].SemesterID)
		yj, hj, okj := semesterKey(out[j].SemesterID)
		if oki != okj {
			return oki
		}
		if !oki {
			return out[i].SemesterID < out[j].SemesterID
		}
		if yi != yj {
			return yi < yj
		}
		return hi < hj
	})
	return out
}

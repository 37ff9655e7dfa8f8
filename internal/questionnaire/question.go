package questionnaire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QuestionType determines how a stored answer is interpreted.
type QuestionType string

const (
	TypeScale  QuestionType = "SCALE"  // numeric 1-10, stored as the value itself
	TypeChoice QuestionType = "CHOICE" // stored as a zero-based option index
	TypeOpen   QuestionType = "OPEN"   // free text, never scored
)

// Scale bounds for SCALE questions.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// Option is one selectable answer of a CHOICE question.
type Option struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Question is a static catalog entry. Questions are defined once at build
// time and never mutated.
type Question struct {
	ID          int          `json:"id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Dimension   string       `json:"dimension,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// MaxValue returns the highest score this question can contribute.
func (q *Question) MaxValue() float64 {
	switch q.Type {
	case TypeChoice:
		best := 0.0
		for _, o := range q.Options {
			best = max(best, o.Value)
		}
		return best
	case TypeScale:
		return ScaleMax
	default:
		return 0
	}
}

// OptionAt returns the option for a zero-based index, or false when the
// index is out of range.
func (q *Question) OptionAt(idx int) (Option, bool) {
	if idx < 0 || idx >= len(q.Options) {
		return Option{}, false
	}
	return q.Options[idx], true
}

// Responses maps a question id to the raw stored answer: an option index for
// CHOICE, a number for SCALE, a string for OPEN. Missing keys mean the
// question was not answered.
type Responses map[int]any

// UnmarshalJSON decodes a JSON object keyed by stringified question ids.
// Numbers are kept as json.Number so integer indices survive untouched.
// Only canonical keys count: "01" or " 1" never alias question 1, so the
// result does not depend on map iteration order.
func (r *Responses) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode responses: %w", err)
	}

	out := make(Responses, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return fmt.Errorf("invalid question id %q", k)
		}
		if strconv.Itoa(id) != k {
			continue
		}
		out[id] = v
	}
	*r = out
	return nil
}

// Text returns the answer to an OPEN question, or "" when unanswered or not
// a string.
func (r Responses) Text(id int) string {
	s, _ := r[id].(string)
	return s
}

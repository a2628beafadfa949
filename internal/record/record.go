// Package record converts between exercise performances and the backend's
// compact wire form: four pipe-delimited fields "sets|reps|weight|exerciseId".
//
// The format has no escaping; a field containing '|' cannot round-trip. That
// is a known limitation of the wire contract, kept for compatibility and
// isolated behind this package.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"vitalmotion/client/internal/domain"
)

const fieldCount = 4

// FormatError reports a malformed record line.
type FormatError struct {
	Line   string
	Fields int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record line %q: got %d fields, want %d", e.Line, e.Fields, fieldCount)
}

// Line is one decoded record line with the fields kept as raw strings.
// Callers that need numbers use Plan; callers that only display or re-encode
// keep the strings untouched.
type Line struct {
	Sets       string
	Reps       string
	Weight     string
	ExerciseID string
}

// Encode formats a line. No validation is performed; inputs are trusted to
// have been validated already.
func Encode(l Line) string {
	return l.Sets + "|" + l.Reps + "|" + l.Weight + "|" + l.ExerciseID
}

// EncodePlan formats a numeric exercise plan as a record line. Numbers are
// written in their shortest decimal form, no fixed precision.
func EncodePlan(p domain.ExercisePlan) string {
	return Encode(Line{
		Sets:       strconv.Itoa(p.Sets),
		Reps:       strconv.Itoa(p.Reps),
		Weight:     strconv.FormatFloat(p.Weight, 'f', -1, 64),
		ExerciseID: p.ExerciseID,
	})
}

// EncodeDraft formats an editable exercise row as a record line, fields as
// the user typed them.
func EncodeDraft(d domain.ExerciseDraft) string {
	return Encode(Line{Sets: d.Sets, Reps: d.Reps, Weight: d.Weight, ExerciseID: d.ExerciseID})
}

// Decode splits a record line into its four fields. It does not interpret
// the numeric fields; that is left to the caller (see Line.Plan).
func Decode(s string) (Line, error) {
	parts := strings.Split(s, "|")
	if len(parts) != fieldCount {
		return Line{}, &FormatError{Line: s, Fields: len(parts)}
	}
	return Line{
		Sets:       parts[0],
		Reps:       parts[1],
		Weight:     parts[2],
		ExerciseID: parts[3],
	}, nil
}

// Plan interprets the line's numeric fields, returning a plan with the name
// left unresolved. Fails if any numeric field does not parse.
func (l Line) Plan() (domain.ExercisePlan, error) {
	sets, err := strconv.Atoi(strings.TrimSpace(l.Sets))
	if err != nil {
		return domain.ExercisePlan{}, fmt.Errorf("sets %q: %w", l.Sets, err)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(l.Reps))
	if err != nil {
		return domain.ExercisePlan{}, fmt.Errorf("reps %q: %w", l.Reps, err)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(l.Weight), 64)
	if err != nil {
		return domain.ExercisePlan{}, fmt.Errorf("weight %q: %w", l.Weight, err)
	}
	return domain.ExercisePlan{
		ExerciseID: l.ExerciseID,
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
	}, nil
}

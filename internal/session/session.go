// Package session holds the mutable working copy of a workout attempt: a
// template is copied into editable rows, the user diverges from it, and the
// result is validated once at submit time and encoded for the backend.
package session

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vitalmotion/client/internal/domain"
	"vitalmotion/client/internal/record"
)

var (
	ErrIndexOutOfRange = errors.New("exercise index out of range")
	ErrNotValidated    = errors.New("session has not passed validation")
	ErrSubmitted       = errors.New("session already submitted")
)

// ValidationError carries the first business rule a session violates.
// Rules are checked in a fixed order and checking stops at the first
// failure; callers re-validate after each fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// State tracks the session lifecycle. Any edit returns a validated session
// to StatePopulated; a stale validation result is never reusable.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateValidated
	StateSubmitted // terminal; start a new session for the next attempt
)

// Field names accepted by SetField.
type Field string

const (
	FieldSets   Field = "sets"
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Session is one in-progress, user-editable attempt at performing a workout.
type Session struct {
	templateID    string
	rows          []domain.ExerciseDraft
	baseline      []domain.ExercisePlan
	notes         string
	difficulty    int
	dateCompleted string
	state         State
}

// FromTemplate deep-copies a template into an editable session. The template
// itself is retained as the immutable intended baseline, so callers can show
// planned values next to the edited ones.
func FromTemplate(t domain.WorkoutTemplate) *Session {
	s := &Session{
		templateID:    t.ID,
		rows:          make([]domain.ExerciseDraft, 0, len(t.Exercises)),
		baseline:      make([]domain.ExercisePlan, len(t.Exercises)),
		difficulty:    1,
		dateCompleted: time.Now().Format("2006-01-02"),
	}
	copy(s.baseline, t.Exercises)
	for _, p := range t.Exercises {
		s.rows = append(s.rows, domain.ExerciseDraft{
			ExerciseID: p.ExerciseID,
			Name:       p.Name,
			Sets:       strconv.Itoa(p.Sets),
			Reps:       strconv.Itoa(p.Reps),
			Weight:     strconv.FormatFloat(p.Weight, 'f', -1, 64),
		})
	}
	if len(s.rows) > 0 {
		s.state = StatePopulated
	}
	return s
}

// New starts an ad-hoc session with no template. A single blank row is
// seeded so the editor never opens empty.
func New() *Session {
	return &Session{
		rows:          []domain.ExerciseDraft{{}},
		difficulty:    1,
		dateCompleted: time.Now().Format("2006-01-02"),
	}
}

func (s *Session) State() State       { return s.state }
func (s *Session) TemplateID() string { return s.templateID }
func (s *Session) Notes() string      { return s.notes }
func (s *Session) Difficulty() int    { return s.difficulty }
func (s *Session) DateCompleted() string {
	return s.dateCompleted
}

// Rows returns the editable rows. Callers must treat the slice as read-only
// and mutate through the editor methods, which track lifecycle state.
func (s *Session) Rows() []domain.ExerciseDraft { return s.rows }

// Intended returns the originally planned values for row i, if the session
// was started from a template and the row existed in it.
func (s *Session) Intended(i int) (domain.ExercisePlan, bool) {
	if i < 0 || i >= len(s.baseline) {
		return domain.ExercisePlan{}, false
	}
	return s.baseline[i], true
}

func (s *Session) edit() error {
	if s.state == StateSubmitted {
		return ErrSubmitted
	}
	s.state = StatePopulated
	return nil
}

// AddExercise appends a blank row.
func (s *Session) AddExercise() error {
	if err := s.edit(); err != nil {
		return err
	}
	s.rows = append(s.rows, domain.ExerciseDraft{})
	return nil
}

// RemoveExercise deletes row i.
func (s *Session) RemoveExercise(i int) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	if err := s.edit(); err != nil {
		return err
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// SetField updates one numeric-bearing field of row i with the raw input
// text. No validation happens here; rules are enforced once, at submit.
func (s *Session) SetField(i int, f Field, value string) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	if err := s.edit(); err != nil {
		return err
	}
	switch f {
	case FieldSets:
		s.rows[i].Sets = value
	case FieldReps:
		s.rows[i].Reps = value
	case FieldWeight:
		s.rows[i].Weight = value
	default:
		return errors.New("unknown field " + string(f))
	}
	return nil
}

// SelectExercise points row i at a different catalog exercise.
func (s *Session) SelectExercise(i int, exerciseID, name string) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	if err := s.edit(); err != nil {
		return err
	}
	s.rows[i].ExerciseID = exerciseID
	s.rows[i].Name = name
	return nil
}

func (s *Session) SetNotes(notes string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.notes = notes
	return nil
}

func (s *Session) SetDifficulty(d int) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.difficulty = d
	return nil
}

func (s *Session) SetDateCompleted(date string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.dateCompleted = date
	return nil
}

// Validate checks the session against the submission rules, in a fixed
// order, stopping at the first violation. On success the session may be
// turned into a submission until the next edit.
func (s *Session) Validate() error {
	if s.state == StateSubmitted {
		return ErrSubmitted
	}
	for _, row := range s.rows {
		if row.ExerciseID == "" || strings.TrimSpace(row.Sets) == "" ||
			strings.TrimSpace(row.Reps) == "" || strings.TrimSpace(row.Weight) == "" {
			return &ValidationError{Message: "Exercise, sets, reps, and weight must not be empty."}
		}
		sets, err1 := strconv.ParseFloat(strings.TrimSpace(row.Sets), 64)
		reps, err2 := strconv.ParseFloat(strings.TrimSpace(row.Reps), 64)
		weight, err3 := strconv.ParseFloat(strings.TrimSpace(row.Weight), 64)
		if err1 != nil || err2 != nil || err3 != nil || sets <= 0 || reps <= 0 || weight < 0 {
			return &ValidationError{Message: "Sets, reps, and weight must be non-negative numbers."}
		}
	}
	if s.difficulty < 1 || s.difficulty > 10 {
		return &ValidationError{Message: "Difficulty must be between 1 and 10."}
	}
	if s.dateCompleted == "" {
		return &ValidationError{Message: "Please input date workout was completed."}
	}
	if !datePattern.MatchString(s.dateCompleted) {
		return &ValidationError{Message: "Date must be in YYYY-MM-DD format."}
	}
	if _, err := time.Parse("2006-01-02", s.dateCompleted); err != nil {
		return &ValidationError{Message: "Please provide a valid date in YYYY-MM-DD format."}
	}
	s.state = StateValidated
	return nil
}

// Submission encodes the session for the backend. Calling it without a
// prior successful Validate is a programmer error and fails with
// ErrNotValidated. On success the session is submitted and terminal.
func (s *Session) Submission() (domain.CompletedWorkout, error) {
	if s.state == StateSubmitted {
		return domain.CompletedWorkout{}, ErrSubmitted
	}
	if s.state != StateValidated {
		return domain.CompletedWorkout{}, ErrNotValidated
	}
	lines := make([]string, 0, len(s.rows))
	for _, row := range s.rows {
		lines = append(lines, record.EncodeDraft(row))
	}
	s.state = StateSubmitted
	return domain.CompletedWorkout{
		TemplateID:    s.templateID,
		Exercises:     lines,
		Notes:         s.notes,
		Difficulty:    s.difficulty,
		DateCompleted: s.dateCompleted,
	}, nil
}

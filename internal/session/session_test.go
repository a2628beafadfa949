package session

import (
	"testing"
	"time"

	"vitalmotion/client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squatTemplate() domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		ID: "t1",
		Exercises: []domain.ExercisePlan{
			{ExerciseID: "e1", Name: "Squat", Sets: 3, Reps: 10, Weight: 100},
		},
	}
}

func TestFromTemplateCopiesRowsAndBaseline(t *testing.T) {
	s := FromTemplate(squatTemplate())

	require.Len(t, s.Rows(), 1)
	assert.Equal(t, StatePopulated, s.State())
	assert.Equal(t, "t1", s.TemplateID())
	assert.Equal(t, domain.ExerciseDraft{
		ExerciseID: "e1", Name: "Squat", Sets: "3", Reps: "10", Weight: "100",
	}, s.Rows()[0])

	intended, ok := s.Intended(0)
	require.True(t, ok)
	assert.Equal(t, 3, intended.Sets)

	// Editing the session leaves the baseline untouched.
	require.NoError(t, s.SetField(0, FieldSets, "4"))
	intended, _ = s.Intended(0)
	assert.Equal(t, 3, intended.Sets)
}

func TestSubmitLifecycle(t *testing.T) {
	s := FromTemplate(squatTemplate())
	require.NoError(t, s.SetField(0, FieldSets, "4"))

	require.NoError(t, s.Validate())
	assert.Equal(t, StateValidated, s.State())

	completed, err := s.Submission()
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, s.State())
	assert.Equal(t, "t1", completed.TemplateID)
	assert.Equal(t, []string{"4|10|100|e1"}, completed.Exercises)
	assert.Equal(t, 1, completed.Difficulty)
	assert.Equal(t, time.Now().Format("2006-01-02"), completed.DateCompleted)
}

func TestSubmissionRequiresValidation(t *testing.T) {
	s := FromTemplate(squatTemplate())

	_, err := s.Submission()
	assert.ErrorIs(t, err, ErrNotValidated)

	require.NoError(t, s.Validate())
	// Any edit invalidates a previous validation.
	require.NoError(t, s.SetField(0, FieldReps, "12"))
	_, err = s.Submission()
	assert.ErrorIs(t, err, ErrNotValidated)
}

func TestSubmittedIsTerminal(t *testing.T) {
	s := FromTemplate(squatTemplate())
	require.NoError(t, s.Validate())
	_, err := s.Submission()
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetField(0, FieldSets, "5"), ErrSubmitted)
	assert.ErrorIs(t, s.AddExercise(), ErrSubmitted)
	assert.ErrorIs(t, s.SetNotes("late"), ErrSubmitted)
	assert.ErrorIs(t, s.Validate(), ErrSubmitted)
	_, err = s.Submission()
	assert.ErrorIs(t, err, ErrSubmitted)
}

func TestValidationOrderEmptyBeforeNumeric(t *testing.T) {
	s := FromTemplate(squatTemplate())
	require.NoError(t, s.SetField(0, FieldSets, ""))
	require.NoError(t, s.SetField(0, FieldReps, "abc"))

	// The empty-field rule fires before the numeric rule.
	err := s.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Exercise, sets, reps, and weight must not be empty.", verr.Message)

	require.NoError(t, s.SetField(0, FieldSets, "3"))
	err = s.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Sets, reps, and weight must be non-negative numbers.", verr.Message)
}

func TestValidationNumericRules(t *testing.T) {
	for _, tc := range []struct {
		name  string
		field Field
		value string
		ok    bool
	}{
		{"zero sets", FieldSets, "0", false},
		{"negative reps", FieldReps, "-1", false},
		{"negative weight", FieldWeight, "-0.5", false},
		{"zero weight", FieldWeight, "0", true},
		{"decimal weight", FieldWeight, "42.5", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := FromTemplate(squatTemplate())
			require.NoError(t, s.SetField(0, tc.field, tc.value))
			err := s.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Sets, reps, and weight must be non-negative numbers.", verr.Message)
			}
		})
	}
}

func TestValidationDifficultyRange(t *testing.T) {
	for _, d := range []int{0, 11, -3} {
		s := FromTemplate(squatTemplate())
		require.NoError(t, s.SetDifficulty(d))
		err := s.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Difficulty must be between 1 and 10.", verr.Message)
	}

	s := FromTemplate(squatTemplate())
	require.NoError(t, s.SetDifficulty(10))
	assert.NoError(t, s.Validate())
}

func TestValidationDateRules(t *testing.T) {
	for _, tc := range []struct {
		date string
		want string
	}{
		{"", "Please input date workout was completed."},
		{"01-02-2024", "Date must be in YYYY-MM-DD format."},
		{"2024/01/02", "Date must be in YYYY-MM-DD format."},
		{"2024-13-40", "Please provide a valid date in YYYY-MM-DD format."},
		{"2024-02-30", "Please provide a valid date in YYYY-MM-DD format."},
	} {
		s := FromTemplate(squatTemplate())
		require.NoError(t, s.SetDateCompleted(tc.date))
		err := s.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.want, verr.Message, tc.date)
	}
}

func TestValidationStopsAtFirstFailingRule(t *testing.T) {
	// Bad rows and a bad date at once: the row rule wins.
	s := FromTemplate(squatTemplate())
	require.NoError(t, s.SetField(0, FieldSets, "abc"))
	require.NoError(t, s.SetDateCompleted("not-a-date"))

	err := s.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Sets, reps, and weight must be non-negative numbers.", verr.Message)
}

func TestScratchSession(t *testing.T) {
	s := New()
	require.Len(t, s.Rows(), 1)
	assert.Equal(t, StateEmpty, s.State())
	assert.Equal(t, "", s.TemplateID())

	// The seeded blank row fails the empty rule until it is filled in.
	err := s.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Exercise, sets, reps, and weight must not be empty.", verr.Message)

	require.NoError(t, s.SelectExercise(0, "e9", "Push Up"))
	require.NoError(t, s.SetField(0, FieldSets, "3"))
	require.NoError(t, s.SetField(0, FieldReps, "15"))
	require.NoError(t, s.SetField(0, FieldWeight, "0"))
	require.NoError(t, s.Validate())

	completed, err := s.Submission()
	require.NoError(t, err)
	assert.Equal(t, []string{"3|15|0|e9"}, completed.Exercises)
	assert.Empty(t, completed.TemplateID)
}

func TestAddRemoveExercise(t *testing.T) {
	s := FromTemplate(squatTemplate())
	require.NoError(t, s.AddExercise())
	require.Len(t, s.Rows(), 2)

	require.NoError(t, s.RemoveExercise(0))
	require.Len(t, s.Rows(), 1)
	assert.Equal(t, "", s.Rows()[0].ExerciseID)

	assert.ErrorIs(t, s.RemoveExercise(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.RemoveExercise(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SetField(7, FieldSets, "1"), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SelectExercise(7, "e1", "Squat"), ErrIndexOutOfRange)
}

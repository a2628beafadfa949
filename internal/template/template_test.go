package template

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vitalmotion/client/internal/domain"
	"vitalmotion/client/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	rec *domain.WorkoutRecord
	err error
}

func (f *fakeSource) Workout(ctx context.Context, uid, workoutID string) (*domain.WorkoutRecord, error) {
	return f.rec, f.err
}

type fakeLookup struct {
	mu      sync.Mutex
	names   map[string]string
	failing map[string]bool
	calls   int
}

func (f *fakeLookup) Exercise(ctx context.Context, uid, exerciseID string) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failing[exerciseID] {
		return nil, errors.New("lookup failed")
	}
	return &domain.Exercise{ID: exerciseID, Name: f.names[exerciseID]}, nil
}

func TestLoadResolvesAllNames(t *testing.T) {
	src := &fakeSource{rec: &domain.WorkoutRecord{
		ID:        "w1",
		Exercises: []string{"3|10|100|e1", "4|8|60.5|e2"},
	}}
	lookup := &fakeLookup{names: map[string]string{"e1": "Squat", "e2": "Deadlift"}}

	tmpl, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", tmpl.ID)
	require.Len(t, tmpl.Exercises, 2)
	assert.Equal(t, domain.ExercisePlan{ExerciseID: "e1", Name: "Squat", Sets: 3, Reps: 10, Weight: 100}, tmpl.Exercises[0])
	assert.Equal(t, domain.ExercisePlan{ExerciseID: "e2", Name: "Deadlift", Sets: 4, Reps: 8, Weight: 60.5}, tmpl.Exercises[1])
	assert.Equal(t, 2, lookup.calls)
}

func TestLoadDegradesFailedLookups(t *testing.T) {
	src := &fakeSource{rec: &domain.WorkoutRecord{
		ID:        "w1",
		Exercises: []string{"3|10|100|e1", "4|8|60|gone"},
	}}
	lookup := &fakeLookup{
		names:   map[string]string{"e1": "Squat"},
		failing: map[string]bool{"gone": true},
	}

	tmpl, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "Squat", tmpl.Exercises[0].Name)
	assert.Equal(t, UnknownExerciseName, tmpl.Exercises[1].Name)
}

func TestLoadAbortsOnFetchFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	lookup := &fakeLookup{}

	_, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.Error(t, err)
	assert.Zero(t, lookup.calls)
}

func TestLoadAbortsOnMalformedLine(t *testing.T) {
	src := &fakeSource{rec: &domain.WorkoutRecord{
		ID:        "w1",
		Exercises: []string{"3|10|100|e1", "3|10|100"},
	}}
	lookup := &fakeLookup{names: map[string]string{"e1": "Squat"}}

	_, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.Error(t, err)
	var ferr *record.FormatError
	assert.ErrorAs(t, err, &ferr)
	assert.Zero(t, lookup.calls)
}

func TestLoadAbortsOnNonNumericLine(t *testing.T) {
	src := &fakeSource{rec: &domain.WorkoutRecord{
		ID:        "w1",
		Exercises: []string{"many|10|100|e1"},
	}}
	lookup := &fakeLookup{}

	_, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.Error(t, err)
	assert.Zero(t, lookup.calls)
}

func TestLoadManyConcurrentLookups(t *testing.T) {
	var lines []string
	names := make(map[string]string)
	for i := 0; i < 64; i++ {
		id := string(rune('a'+i%26)) + "x"
		lines = append(lines, "3|10|100|"+id)
		names[id] = "Exercise " + id
	}
	src := &fakeSource{rec: &domain.WorkoutRecord{ID: "w1", Exercises: lines}}
	lookup := &fakeLookup{names: names}

	tmpl, err := Load(context.Background(), src, lookup, "u1", "w1")
	require.NoError(t, err)
	require.Len(t, tmpl.Exercises, 64)
	for i, p := range tmpl.Exercises {
		assert.Equal(t, names[p.ExerciseID], p.Name, "slot %d", i)
	}
	assert.Equal(t, 64, lookup.calls)
}

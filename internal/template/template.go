// Package template materializes workout templates: it fetches the stored
// record, decodes each pipe-delimited line and resolves exercise names.
package template

import (
	"context"
	"fmt"
	"sync"

	"vitalmotion/client/internal/domain"
	"vitalmotion/client/internal/record"
)

// UnknownExerciseName is the sentinel display name used when a single
// exercise lookup fails. One dangling reference must not block viewing or
// editing the rest of the workout.
const UnknownExerciseName = "Unknown Exercise"

// Source fetches the raw stored workout.
type Source interface {
	Workout(ctx context.Context, uid, workoutID string) (*domain.WorkoutRecord, error)
}

// Lookup resolves an exercise id to its catalog entry.
type Lookup interface {
	Exercise(ctx context.Context, uid, exerciseID string) (*domain.Exercise, error)
}

// Load fetches workout workoutID and resolves every exercise reference.
// Name lookups are independent and issued concurrently, each writing its
// own slot; the template is returned once all of them have settled. A
// failed lookup degrades to UnknownExerciseName, while a failed top-level
// fetch or a malformed record line aborts the load.
func Load(ctx context.Context, src Source, lookup Lookup, uid, workoutID string) (*domain.WorkoutTemplate, error) {
	rec, err := src.Workout(ctx, uid, workoutID)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.ExercisePlan, len(rec.Exercises))
	for i, line := range rec.Exercises {
		decoded, err := record.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", workoutID, err)
		}
		plan, err := decoded.Plan()
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", workoutID, err)
		}
		plans[i] = plan
	}

	var wg sync.WaitGroup
	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ex, err := lookup.Exercise(ctx, uid, plans[i].ExerciseID)
			if err != nil || ex == nil || ex.Name == "" {
				plans[i].Name = UnknownExerciseName
				return
			}
			plans[i].Name = ex.Name
		}(i)
	}
	wg.Wait()

	return &domain.WorkoutTemplate{ID: rec.ID, Exercises: plans}, nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"vitalmotion/client/internal/auth"
	"vitalmotion/client/internal/domain"
	"vitalmotion/client/internal/record"
	"vitalmotion/client/internal/session"
	"vitalmotion/client/internal/template"
)

// currentUser loads the persisted session and rejects expired tokens before
// any request is made with them.
func currentUser() auth.State {
	state, err := authStore.Load()
	if err != nil {
		log.Fatalf("Not logged in. Run 'vitalmotion login' first. (%v)", err)
	}
	if auth.TokenExpired(state.Token) {
		log.Fatalf("Session expired. Run 'vitalmotion login' again.")
	}
	return state
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// dateOrToday applies the default used across all note commands.
func dateOrToday(d string) string {
	if d == "" {
		return today()
	}
	return d
}

// parseRowEdit splits an "--set index:field=value" flag.
func parseRowEdit(s string) (int, session.Field, string, error) {
	head, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", "", fmt.Errorf("invalid edit %q, want index:field=value", s)
	}
	idxStr, fieldStr, ok := strings.Cut(head, ":")
	if !ok {
		return 0, "", "", fmt.Errorf("invalid edit %q, want index:field=value", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", "", fmt.Errorf("invalid row index in %q", s)
	}
	switch f := session.Field(fieldStr); f {
	case session.FieldSets, session.FieldReps, session.FieldWeight:
		return idx, f, value, nil
	default:
		return 0, "", "", fmt.Errorf("unknown field %q, want sets, reps or weight", fieldStr)
	}
}

// parseRowPick splits an "--exercise index=exerciseId" flag.
func parseRowPick(s string) (int, string, error) {
	idxStr, exerciseID, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid selection %q, want index=exerciseId", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", fmt.Errorf("invalid row index in %q", s)
	}
	return idx, exerciseID, nil
}

// performances decodes a completed workout's record lines and resolves each
// exercise name for display. A failed lookup degrades to the sentinel name,
// same as template loading.
func performances(ctx context.Context, uid string, w domain.CompletedWorkout) ([]domain.ExercisePerformance, error) {
	out := make([]domain.ExercisePerformance, 0, len(w.Exercises))
	for _, raw := range w.Exercises {
		line, err := record.Decode(raw)
		if err != nil {
			return nil, err
		}
		name := template.UnknownExerciseName
		if ex, err := apiClient.Exercise(ctx, uid, line.ExerciseID); err == nil && ex.Name != "" {
			name = ex.Name
		}
		out = append(out, domain.ExercisePerformance{
			Name:   name,
			Sets:   line.Sets,
			Reps:   line.Reps,
			Weight: line.Weight,
		})
	}
	return out, nil
}

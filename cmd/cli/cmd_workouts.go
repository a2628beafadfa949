package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"vitalmotion/client/internal/record"
	"vitalmotion/client/internal/session"
	"vitalmotion/client/internal/template"

	"github.com/spf13/cobra"
)

func runWorkoutsList(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	records, err := apiClient.Workouts(ctx, state.UID)
	if err != nil {
		log.Fatalf("Could not list workouts: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("No stored workouts.")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  (%d exercises)\n", rec.ID, len(rec.Exercises))
	}
}

func runWorkoutsShow(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	tmpl, err := template.Load(ctx, apiClient, apiClient, state.UID, args[0])
	if err != nil {
		log.Fatalf("Could not load workout: %v", err)
	}
	fmt.Printf("Workout %s\n", tmpl.ID)
	for i, p := range tmpl.Exercises {
		fmt.Printf("  %d. %s  %d x %d @ %g\n", i, p.Name, p.Sets, p.Reps, p.Weight)
	}
}

func runWorkoutsCreate(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	if len(lines) == 0 {
		log.Fatalf("At least one --line is required.")
	}
	for _, line := range lines {
		if _, err := record.Decode(line); err != nil {
			log.Fatalf("Invalid exercise line: %v", err)
		}
	}

	id, err := apiClient.CreateWorkout(ctx, state.UID, lines)
	if err != nil {
		log.Fatalf("Could not create workout: %v", err)
	}
	fmt.Printf("Created workout %s\n", id)
}

func runWorkoutsUpdate(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	for _, line := range lines {
		if _, err := record.Decode(line); err != nil {
			log.Fatalf("Invalid exercise line: %v", err)
		}
	}

	if err := apiClient.UpdateWorkout(ctx, state.UID, args[0], lines); err != nil {
		log.Fatalf("Could not update workout: %v", err)
	}
	fmt.Println("Workout updated.")
}

func runWorkoutsDelete(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	if err := apiClient.DeleteWorkout(ctx, state.UID, args[0]); err != nil {
		log.Fatalf("Could not delete workout: %v", err)
	}
	fmt.Println("Workout deleted, along with its completed records.")
}

// runLog drives one full session: start from a template (or scratch), apply
// the requested edits, validate, and submit the result.
func runLog(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	var sess *session.Session
	if len(args) == 1 {
		tmpl, err := template.Load(ctx, apiClient, apiClient, state.UID, args[0])
		if err != nil {
			log.Fatalf("Could not load workout: %v", err)
		}
		sess = session.FromTemplate(*tmpl)
	} else {
		sess = session.New()
	}

	for _, pick := range picks {
		idx, exerciseID, err := parseRowPick(pick)
		if err != nil {
			log.Fatalf("%v", err)
		}
		name := template.UnknownExerciseName
		if ex, err := apiClient.Exercise(ctx, state.UID, exerciseID); err == nil && ex.Name != "" {
			name = ex.Name
		}
		for idx >= len(sess.Rows()) {
			if err := sess.AddExercise(); err != nil {
				log.Fatalf("Could not add exercise row: %v", err)
			}
		}
		if err := sess.SelectExercise(idx, exerciseID, name); err != nil {
			log.Fatalf("Could not select exercise: %v", err)
		}
	}

	for _, edit := range edits {
		idx, field, value, err := parseRowEdit(edit)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := sess.SetField(idx, field, value); err != nil {
			log.Fatalf("Could not apply edit %q: %v", edit, err)
		}
	}

	if notes != "" {
		if err := sess.SetNotes(notes); err != nil {
			log.Fatalf("Could not set notes: %v", err)
		}
	}
	if err := sess.SetDifficulty(difficulty); err != nil {
		log.Fatalf("Could not set difficulty: %v", err)
	}
	if date != "" {
		if err := sess.SetDateCompleted(date); err != nil {
			log.Fatalf("Could not set date: %v", err)
		}
	}

	if err := sess.Validate(); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			log.Fatalf("%s", verr.Message)
		}
		log.Fatalf("Validation failed: %v", err)
	}

	completed, err := sess.Submission()
	if err != nil {
		log.Fatalf("Could not build submission: %v", err)
	}
	if completed.TemplateID == "" {
		// Scratch sessions are stored as a new template first, so the
		// completed record has something to hang off.
		id, err := apiClient.CreateWorkout(ctx, state.UID, completed.Exercises)
		if err != nil {
			log.Fatalf("Could not store the new workout: %v", err)
		}
		completed.TemplateID = id
	}
	if err := apiClient.CompleteWorkout(ctx, state.UID, completed); err != nil {
		log.Fatalf("Could not submit workout: %v", err)
	}
	fmt.Printf("Workout logged for %s.\n", completed.DateCompleted)
}

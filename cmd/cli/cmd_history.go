package main

import (
	"context"
	"fmt"
	"log"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
	"vitalmotion/client/internal/history"

	"github.com/spf13/cobra"
)

func runHistory(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	completed, err := apiClient.CompletedWorkouts(ctx, state.UID, backend.AllTemplates)
	if err != nil {
		log.Fatalf("Could not fetch completed workouts: %v", err)
	}
	pain, err := apiClient.PainNotes(ctx, state.UID)
	if err != nil {
		log.Fatalf("Could not fetch pain notes: %v", err)
	}

	workoutEntries := make([]domain.HistoryEntry, 0, len(completed))
	for _, w := range completed {
		perfs, err := performances(ctx, state.UID, w)
		if err != nil {
			log.Fatalf("Could not decode workout %s: %v", w.ID, err)
		}
		workoutEntries = append(workoutEntries, domain.WorkoutEntry(w, perfs))
	}
	painEntries := make([]domain.HistoryEntry, 0, len(pain))
	for _, n := range pain {
		painEntries = append(painEntries, domain.PainEntry(n))
	}

	merged := history.Merge(workoutEntries, painEntries)
	if len(merged) == 0 {
		fmt.Println("No history yet.")
		return
	}
	for _, e := range merged {
		switch e.Type {
		case domain.HistoryWorkout:
			fmt.Printf("%s  workout (difficulty %d)\n", e.Date, e.Difficulty)
			for _, p := range e.Exercises {
				fmt.Printf("    %s  %s x %s @ %s\n", p.Name, p.Sets, p.Reps, p.Weight)
			}
			if e.Notes != "" {
				fmt.Printf("    notes: %s\n", e.Notes)
			}
		case domain.HistoryPain:
			fmt.Printf("%s  pain    %s level %d\n", e.Date, e.BodyPart, e.PainLevel)
		}
	}
}

func runChartsPain(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	if fromDate == "" || toDate == "" {
		log.Fatalf("Both --from and --to are required.")
	}

	notes, err := apiClient.PainNotes(ctx, state.UID)
	if err != nil {
		log.Fatalf("Could not fetch pain notes: %v", err)
	}

	series := history.PainByBodyPartPerDay(notes, fromDate, toDate)
	if len(series) == 0 {
		fmt.Println("No pain notes in range.")
		return
	}
	for part, s := range series {
		fmt.Printf("%s:\n", part)
		for i, label := range s.Labels {
			fmt.Printf("  %s  %.1f\n", label, s.Values[i])
		}
	}
}

func runChartsWorkouts(cmd *cobra.Command, args []string) {
	state := currentUser()
	ctx := context.Background()

	if fromDate == "" || toDate == "" {
		log.Fatalf("Both --from and --to are required.")
	}

	completed, err := apiClient.CompletedWorkouts(ctx, state.UID, backend.AllTemplates)
	if err != nil {
		log.Fatalf("Could not fetch completed workouts: %v", err)
	}

	s := history.WorkoutsPerWeek(completed, fromDate, toDate)
	if len(s.Labels) == 0 {
		fmt.Println("No workouts in range.")
		return
	}
	for i, label := range s.Labels {
		fmt.Printf("%s  %g\n", label, s.Values[i])
	}
}

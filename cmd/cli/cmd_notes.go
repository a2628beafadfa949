package main

import (
	"context"
	"fmt"
	"log"

	"vitalmotion/client/internal/domain"

	"github.com/spf13/cobra"
)

func runJournalList(cmd *cobra.Command, args []string) {
	state := currentUser()

	journals, err := apiClient.Journals(context.Background(), state.UID)
	if err != nil {
		log.Fatalf("Could not fetch journal entries: %v", err)
	}
	if len(journals) == 0 {
		fmt.Println("No journal entries.")
		return
	}
	for _, j := range journals {
		fmt.Printf("%s  %s  (%s)\n", j.Date, j.Content, j.ID)
	}
}

func runJournalAdd(cmd *cobra.Command, args []string) {
	state := currentUser()

	if content == "" {
		log.Fatalf("--content is required.")
	}
	entry := domain.Journal{Date: dateOrToday(date), Content: content}
	if err := apiClient.AddJournal(context.Background(), state.UID, entry); err != nil {
		log.Fatalf("Could not add journal entry: %v", err)
	}
	fmt.Println("Journal entry recorded.")
}

func runJournalRemove(cmd *cobra.Command, args []string) {
	state := currentUser()

	if err := apiClient.DeleteJournal(context.Background(), state.UID, args[0]); err != nil {
		log.Fatalf("Could not remove journal entry: %v", err)
	}
	fmt.Println("Journal entry removed.")
}

func runMedsList(cmd *cobra.Command, args []string) {
	state := currentUser()

	meds, err := apiClient.Medications(context.Background(), state.UID)
	if err != nil {
		log.Fatalf("Could not fetch medications: %v", err)
	}
	if len(meds) == 0 {
		fmt.Println("No medication notes.")
		return
	}
	for _, m := range meds {
		fmt.Printf("%s %s  %s %s  (%s)\n", m.Date, m.Time, m.Name, m.Dosage, m.ID)
	}
}

func runMedsAdd(cmd *cobra.Command, args []string) {
	state := currentUser()

	if medName == "" {
		log.Fatalf("--name is required.")
	}
	med := domain.Medication{
		Date:   dateOrToday(date),
		Name:   medName,
		Dosage: medDosage,
		Time:   medTime,
	}
	if err := apiClient.AddMedication(context.Background(), state.UID, med); err != nil {
		log.Fatalf("Could not add medication: %v", err)
	}
	fmt.Println("Medication recorded.")
}

func runMedsRemove(cmd *cobra.Command, args []string) {
	state := currentUser()

	if err := apiClient.DeleteMedication(context.Background(), state.UID, args[0]); err != nil {
		log.Fatalf("Could not remove medication: %v", err)
	}
	fmt.Println("Medication removed.")
}

// runRecommend sends the draft exercise ids and prints the backend's
// suggestion.
func runRecommend(cmd *cobra.Command, args []string) {
	state := currentUser()

	draft := make([]domain.ExerciseDraft, 0, len(picks))
	for _, exerciseID := range picks {
		draft = append(draft, domain.ExerciseDraft{ExerciseID: exerciseID})
	}
	rec, err := apiClient.RecommendExercise(context.Background(), state.UID, draft)
	if err != nil {
		log.Fatalf("Could not fetch recommendation: %v", err)
	}
	fmt.Printf("Train %s next, at %s intensity.\n", rec.Recommended, rec.Intensity)
}

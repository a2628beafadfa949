package main

import (
	"context"
	"fmt"
	"log"

	"vitalmotion/client/internal/domain"

	"github.com/spf13/cobra"
)

func runPainList(cmd *cobra.Command, args []string) {
	state := currentUser()

	notes, err := apiClient.PainNotes(context.Background(), state.UID)
	if err != nil {
		log.Fatalf("Could not fetch pain notes: %v", err)
	}
	if len(notes) == 0 {
		fmt.Println("No pain notes.")
		return
	}
	for _, n := range notes {
		fmt.Printf("%s  %s  level %d  (%s)\n", n.Date, n.BodyPart, n.PainLevel, n.HashID)
	}
}

func runPainAdd(cmd *cobra.Command, args []string) {
	state := currentUser()

	if bodyPart == "" {
		log.Fatalf("--body-part is required.")
	}
	note := domain.PainNote{
		Date:      dateOrToday(date),
		PainLevel: painLevel,
		BodyPart:  bodyPart,
	}
	if err := apiClient.AddPainNote(context.Background(), state.UID, note); err != nil {
		log.Fatalf("Could not add pain note: %v", err)
	}
	fmt.Println("Pain note recorded.")
}

func runPainEdit(cmd *cobra.Command, args []string) {
	state := currentUser()

	if bodyPart == "" {
		log.Fatalf("--body-part is required.")
	}
	if err := apiClient.EditPainNote(context.Background(), state.UID, args[0], painLevel, bodyPart); err != nil {
		log.Fatalf("Could not edit pain note: %v", err)
	}
	fmt.Println("Pain note updated.")
}

func runPainRemove(cmd *cobra.Command, args []string) {
	state := currentUser()

	if err := apiClient.RemovePainNote(context.Background(), state.UID, args[0]); err != nil {
		log.Fatalf("Could not remove pain note: %v", err)
	}
	fmt.Println("Pain note removed.")
}

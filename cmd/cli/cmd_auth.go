package main

import (
	"context"
	"fmt"
	"log"

	"vitalmotion/client/internal/auth"

	"github.com/spf13/cobra"
)

func runLogin(cmd *cobra.Command, args []string) {
	if email == "" || password == "" {
		log.Fatalf("Both --email and --password are required.")
	}

	state, err := auth.Login(context.Background(), apiClient, apiClient, email, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	if err := authStore.Save(state); err != nil {
		log.Fatalf("Could not persist session: %v", err)
	}
	fmt.Printf("Logged in as %s\n", state.UID)
}

func runSignup(cmd *cobra.Command, args []string) {
	if email == "" || password == "" {
		log.Fatalf("Both --email and --password are required.")
	}

	state, err := auth.SignUp(context.Background(), apiClient, apiClient, email, password, firstName, lastName)
	if err != nil {
		log.Fatalf("Signup failed: %v", err)
	}
	if err := authStore.Save(state); err != nil {
		log.Fatalf("Could not persist session: %v", err)
	}
	fmt.Printf("Account created. Logged in as %s\n", state.UID)
}

func runLogout(cmd *cobra.Command, args []string) {
	if err := authStore.Clear(); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	fmt.Println("Logged out.")
}

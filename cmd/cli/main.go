package main

import (
	"log"
	"net/http"

	"vitalmotion/client/internal/auth"
	"vitalmotion/client/internal/backend/rest"
	"vitalmotion/client/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfg       config.Config
	apiClient *rest.Client
	authStore *auth.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
		apiClient = rest.New(cfg.Backend.BaseURL, cfg.Backend.IdentityURL,
			&http.Client{Timeout: cfg.Backend.Timeout})
		authStore = auth.NewStore(cfg.Auth.StateFile)
	}
}

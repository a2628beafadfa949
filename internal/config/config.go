package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the CLI and the dev server.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Backend   BackendConfig   `mapstructure:"backend"`
	Auth      AuthConfig      `mapstructure:"auth"`
	DevServer DevServerConfig `mapstructure:"devserver"`
}

type BackendConfig struct {
	// BaseURL is the VitalMotion backend root, e.g. http://localhost:5001.
	BaseURL string `mapstructure:"base_url"`
	// IdentityURL is the identity provider root; defaults to BaseURL when
	// empty (the dev server hosts both).
	IdentityURL string        `mapstructure:"identity_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	// StateFile is where the logged-in uid and token are persisted.
	StateFile string `mapstructure:"state_file"`
}

type DevServerConfig struct {
	Address string    `mapstructure:"address"`
	JWT     JWTConfig `mapstructure:"jwt"`
}

// JWTConfig defines JWT specific configuration for the dev server's
// identity endpoints.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling, e.g. backend.base_url -> BACKEND_BASE_URL.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("backend.base_url", "http://localhost:5001")
	viper.SetDefault("backend.identity_url", "")
	viper.SetDefault("backend.timeout", "15s")
	viper.SetDefault("auth.state_file", defaultStateFile())
	viper.SetDefault("devserver.address", ":5001")
	viper.SetDefault("devserver.jwt.secret", "dev-only-secret")
	viper.SetDefault("devserver.jwt.expiration", "24h")

	err = viper.ReadInConfig()
	// Config file not found is fine; defaults and env vars carry it.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vitalmotion/auth.json"
	}
	return home + "/.vitalmotion/auth.json"
}

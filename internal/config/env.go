package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pterm/pterm"
)

// DefaultAPIBaseURL is the control-plane endpoint used unless overridden.
const DefaultAPIBaseURL = "https://api.cloudflare.com/client/v4"

// Env holds environment-based configuration
type Env struct {
	APIToken   string `envconfig:"CLOUDFLARE_API_TOKEN"`
	AccountID  string `envconfig:"CLOUDFLARE_ACCOUNT_ID"`
	APIBaseURL string `envconfig:"CLOUDFLARE_API_BASE_URL" default:"https://api.cloudflare.com/client/v4"`
}

// LoadEnv loads configuration from environment variables. Variables from a
// .env file in the working directory are applied first without overriding
// variables that are already set.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		pterm.Debug.Println("Loaded variables from .env file")
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}

	if err := ValidateAPIBaseURL(env.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid CLOUDFLARE_API_BASE_URL: %w", err)
	}

	return &env, nil
}

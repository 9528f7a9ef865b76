package config

import (
	"fmt"
	"net/url"
)

// ValidateAPIBaseURL checks that u is an absolute http(s) URL.
func ValidateAPIBaseURL(u string) error {
	if u == "" {
		return fmt.Errorf("API base URL is required")
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API base URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("API base URL must include a host")
	}
	return nil
}

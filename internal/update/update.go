package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/mod/semver"
)

// ErrDevVersion is returned when the running binary has no release version.
var ErrDevVersion = errors.New("dev version not supported")

// ErrDisabled is returned when the check was switched off through EnvNoUpdateCheck.
var ErrDisabled = errors.New("update check disabled")

// EnvNoUpdateCheck disables the release check when set to any value.
const EnvNoUpdateCheck = "D1CTL_NO_UPDATE_CHECK"

// ReleaseURL is the GitHub endpoint describing the newest published d1ctl release.
const ReleaseURL = "https://api.github.com/repos/d1ctl/d1ctl/releases/latest"

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Release is a published d1ctl release.
type Release struct {
	Version string `json:"tag_name"`
	URL     string `json:"html_url"`
}

// Check reports the latest d1ctl release when it is newer than current.
// A nil release with a nil error means current is up to date.
func Check(ctx context.Context, doer doer, current string) (*Release, error) {
	if _, ok := os.LookupEnv(EnvNoUpdateCheck); ok {
		return nil, ErrDisabled
	}
	if !semver.IsValid(current) {
		return nil, ErrDevVersion
	}

	rel, err := latest(ctx, doer)
	if err != nil {
		return nil, err
	}
	if semver.Compare(current, rel.Version) >= 0 {
		return nil, nil
	}
	return rel, nil
}

func latest(ctx context.Context, doer doer) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to do request, status code: %d", res.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(res.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}
	if !semver.IsValid(rel.Version) {
		return nil, fmt.Errorf("invalid semver tag: %s", rel.Version)
	}

	return &rel, nil
}

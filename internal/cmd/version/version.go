package version

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/d1ctl/d1ctl/internal/build"
	"github.com/d1ctl/d1ctl/internal/http"
	"github.com/d1ctl/d1ctl/internal/update"
)

// updateCheckTimeout bounds the release lookup so a slow GitHub never delays the output.
const updateCheckTimeout = 2 * time.Second

// Cmd prints the build information of the running binary and, for release
// builds, whether a newer d1ctl release is available. It is the only command
// that looks for releases.
type Cmd struct{}

// Run prints the version and any VCS details recorded at build time.
func (c *Cmd) Run(ctx context.Context, httpClient http.HTTPDoer) error {
	lines := []string{
		"d1ctl " + build.Version,
		"platform: " + build.Platform(),
	}
	if build.Revision != "" {
		lines = append(lines, "revision: "+build.Revision)
	}
	if build.ModificationTime != "" {
		lines = append(lines, "built: "+build.ModificationTime)
	}
	if build.Modified {
		lines = append(lines, "modified: true")
	}
	pterm.Println(strings.Join(lines, "\n"))

	if notice := newerRelease(ctx, httpClient); notice != "" {
		pterm.Println()
		pterm.Println(notice)
	}
	return nil
}

// newerRelease returns the upgrade notice, or an empty string when the
// lookup is disabled, fails, or finds nothing newer.
func newerRelease(ctx context.Context, httpClient http.HTTPDoer) string {
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	rel, err := update.Check(ctx, httpClient, build.Version)
	if err != nil {
		pterm.Debug.Printfln("update check: %s", err)
		return ""
	}
	if rel == nil {
		return ""
	}

	notice := fmt.Sprintf("A new release of d1ctl is available: %s -> %s", build.Version, rel.Version)
	if rel.URL != "" {
		notice += "\n" + rel.URL
	}
	return notice
}

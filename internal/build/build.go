package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Version of d1ctl. Set at build time via ldflags, or taken from the module
// BuildInfo when installed with "go install".
// Versions without a leading "v" get one; anything that is not semver ends
// up as "invalid (ORIGINAL)".
var Version = "dev"

// Revision is the vcs.revision the binary was built from, if known.
var Revision string

// Modified reports whether the working tree had local changes at build time.
var Modified bool

// ModificationTime is the RFC3339 vcs.time of the build, if known.
var ModificationTime string

// Platform is the GOOS/GOARCH pair the binary was built for.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// UserAgent identifies d1ctl to the Cloudflare API,
// for example "d1ctl/v0.4.1 (linux/amd64)".
func UserAgent() string {
	return "d1ctl/" + Version + " (" + Platform() + ")"
}

// buildInfoFunc matches debug.ReadBuildInfo so tests can swap it out.
type buildInfoFunc func() (*debug.BuildInfo, bool)

var readBuildInfo buildInfoFunc = debug.ReadBuildInfo

// setVersion normalises Version and fills the vcs fields.
// Only init and the unit tests call it.
func setVersion() {
	if Version == "dev" {
		buildInfo, ok := readBuildInfo()
		if ok {
			if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
				Version = buildInfo.Main.Version
			}
			for _, kv := range buildInfo.Settings {
				switch kv.Key {
				case "vcs.modified":
					Modified = kv.Value == "true"
				case "vcs.time":
					ModificationTime = kv.Value
				case "vcs.revision":
					Revision = kv.Value
				}
			}
		}
	}

	if Version != "dev" {
		origVersion := Version
		if !strings.HasPrefix(Version, "v") {
			Version = "v" + Version
		}
		if !semver.IsValid(Version) {
			Version = fmt.Sprintf("invalid (%s)", origVersion)
		}
	}
}

func init() {
	setVersion()
}

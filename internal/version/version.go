// Package version exposes build information set via -ldflags.
package version

// Overridden at build time:
//
//	go build -ldflags "-X guildboard/internal/version.Version=v1.2.3 -X guildboard/internal/version.Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
)

// Info is the JSON shape served on /version.
type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Name:    "guildboard",
		Version: Version,
		Commit:  Commit,
	}
}

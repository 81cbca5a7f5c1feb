// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "animedex"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string sent to the catalog API.
	UserAgent = App + "/" + Version

	// KitsuAPI is the base endpoint of the anime collection on Kitsu.
	KitsuAPI = "https://kitsu.io/api/edge/anime"

	// KitsuWeb is the public page prefix for a single anime on Kitsu.
	KitsuWeb = "https://kitsu.io/anime"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = ""
	BuiltBy  = ""
	Revision = ""
)

const (
	// ReleasesAPI returns the latest published release.
	ReleasesAPI = "https://api.github.com/repos/anisan-cli/animedex/releases/latest"

	// ReleasesWeb is the prefix of a release page.
	ReleasesWeb = "https://github.com/anisan-cli/animedex/releases/tag/v"
)

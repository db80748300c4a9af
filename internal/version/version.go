// Package version carries build metadata set with -ldflags.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}

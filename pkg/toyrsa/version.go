package toyrsa

// Version is overridden at build time with
// -ldflags "-X github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// BuildVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func BuildVersion() string {
	return Version
}

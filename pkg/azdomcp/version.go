package azdomcp

// Version is the azdomcp release version. Overridden at build time via
// -ldflags "-X github.com/azdomcp/azdomcp/pkg/azdomcp.Version=...".
var Version = "0.1.0"

package version

// Version is the clientdesk version. It is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/clientdesk/internal/version.Version=...".
var Version = "0.1.0-dev"

// Package rolodex exposes module-level metadata for the rolodex project.
package rolodex

// Version is the rolodex release version.
const Version = "0.1.0"

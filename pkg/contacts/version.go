// Package contacts exposes build metadata for the contacts CLI.
package contacts

// Version is the contacts release version.
const Version = "0.1.0"

// Package pdbdb keeps build information of the PDBdb application.
package pdbdb

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)

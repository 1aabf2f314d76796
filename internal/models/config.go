package models

// QueryConfig contains configuration for reading and rendering a query capture
type QueryConfig struct {
	// Input
	InputPath string // Capture file, "-" or empty for stdin
	Tool      string // Query tool that produced the capture (pacman)

	// Parsing
	Strict bool // Abort on the first malformed block

	// Output
	Format string // table, json or yaml

	// Filters
	Explicit bool // Only explicitly installed packages
	Deps     bool // Only packages installed as dependencies
}

// Package config provides configuration loading and defaults for promptquant.
package config

// DefaultDataDir is the default location of the agent's session data.
const DefaultDataDir = "~/.claude"

// DefaultConfigDir is the default location for promptquant configuration.
const DefaultConfigDir = "~/.config/promptquant"

// DefaultDBName is the filename for the SQLite session store.
const DefaultDBName = "promptquant.db"

// DefaultScanConcurrency is how many transcripts the scan command analyzes
// in parallel.
const DefaultScanConcurrency = 4

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// Package config loads jargon settings from defaults, an optional YAML file
// and JARGON_* environment variables.
package config

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Decks    DecksConfig    `mapstructure:"decks"`
	Log      LogConfig      `mapstructure:"log"`
	Study    StudyConfig    `mapstructure:"study"`
}

// DatabaseConfig locates the SQLite event store.
type DatabaseConfig struct {
	// Path to the database file. Empty means the XDG data directory.
	Path string `mapstructure:"path"`
}

// DecksConfig selects where cards come from.
type DecksConfig struct {
	// File is a YAML deck file. Empty means the decks built into the binary.
	File string `mapstructure:"file" validate:"omitempty,file"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File receives JSON log lines. Empty means the XDG state directory,
	// "-" means stderr.
	File string `mapstructure:"file"`
}

// StudyConfig holds viewer preferences.
type StudyConfig struct {
	StartDeck string `mapstructure:"start_deck" validate:"required,oneof=terms acronyms"`
}

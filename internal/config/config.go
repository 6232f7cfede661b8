// Package config loads the TOML settings file shared by cmd/jsonnetlex and
// cmd/jsonnetlexd.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is used when no --config flag names a settings file.
const DefaultPath = "jsonnetlex.toml"

// Config holds every setting either binary may need. Each binary reads
// only the fields relevant to it; fields are left zero-valued when the
// TOML file omits them.
type Config struct {
	// Encoding is the default assumed source encoding, used by
	// cmd/jsonnetlex when no --encoding flag overrides it.
	Encoding string `toml:"encoding"`

	// TableWidth bounds the width of the token table rendered by
	// "jsonnetlex tokens --format=table".
	TableWidth int `toml:"table_width"`

	Server ServerConfig `toml:"server"`
}

type ServerConfig struct {
	// Listen is the address jsonnetlexd binds to, e.g. ":8080".
	Listen string `toml:"listen"`

	// Secret is the JWT signing secret. If empty, jsonnetlexd generates a
	// random one at startup and logs a warning that issued tokens will not
	// survive a restart.
	Secret string `toml:"secret"`

	// OperatorPasswordHash is the bcrypt-hashed password for the single
	// built-in operator account used to obtain a bearer token.
	OperatorPasswordHash string `toml:"operator_password_hash"`

	// HistoryDB is the path to the sqlite database internal/history
	// persists lex request records to.
	HistoryDB string `toml:"history_db"`
}

// Defaults returns the settings used when no config file is present.
func Defaults() Config {
	return Config{
		Encoding:   "utf-8",
		TableWidth: 100,
		Server: ServerConfig{
			Listen:    "localhost:8080",
			HistoryDB: "jsonnetlexd_history.db",
		},
	}
}

// Load reads and parses the TOML file at path, starting from Defaults and
// overlaying whatever keys the file sets. A missing file is not an error:
// Load returns Defaults() unchanged.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

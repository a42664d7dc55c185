// Package config loads the editor's settings.
//
// Settings are resolved in three layers, later layers winning:
//
//	built-in defaults  <  config file (TOML)  <  EDIT_* environment
//
// Command-line flags are applied on top by the caller before Validate.
// The file defaults to $XDG_CONFIG_HOME/edit/config.toml and may be absent.
//
// Example file:
//
//	[buffer]
//	default_capacity = 65536
//
//	[editor]
//	preserve_column = true
//	scroll_follow = true
//	escape_timeout = "1s"
//
//	[ui]
//	backend = "tcell"   # or "raw"
//	colors = true
//
//	[logging]
//	level = "info"
//	file = ""           # empty disables logging
//	max_size_mb = 5
//	max_backups = 2
//
// Basic usage:
//
//	cfg, err := config.Load(config.WithConfigFile(path))
//	if err != nil {
//	    return err
//	}
//	cfg.Logging.Level = flagLevel
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

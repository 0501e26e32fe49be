// Package config handles loading and validation of clack configuration.
//
// Configuration is read from ~/.config/clack/config.toml (or
// $XDG_CONFIG_HOME/clack/config.toml), optionally overridden by a
// .clack.toml in the working directory and by environment variables.
//
// # Configuration Sources (highest priority first)
//
//   - .clack.toml in the working directory
//   - CLACK_THEME env var: theme family name
//   - CLACK_ASCII env var: force ASCII glyphs ("1", "true", ...)
//   - Global config file
//   - Default values
//
// # Example
//
//	ascii = false
//
//	[theme]
//	name = "catppuccin"   # none, default, dracula, nord, gruvbox, catppuccin
//	mode = "auto"         # auto, light, dark
//	accent = "#ff79c6"    # per-colour override
//
//	[password]
//	mask = "*"
//
//	[spinner]
//	interval = "80ms"
package config

// Package config loads the colour configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use $XDG_CONFIG_HOME/fm/fm-config.toml (os.UserConfigDir)
//  3. If the file doesn't exist, use the built-in configuration and write it
//     to the resolved path so it can be edited
//  4. If the file exists but some keys are missing, those keys keep their
//     built-in values
//
// # Colours
//
// Every colour value is validated while decoding. Accepted forms:
//
//   - Hex triplets: "#81a2be"
//   - ANSI palette indexes: "0" to "255"
//   - Names: "black", "red", ..., "lightcyan", "white", "darkgray"
//   - "reset" for the terminal default
//
// Names are case-insensitive and may contain dashes or underscores
// ("Light-Blue" is "lightblue").
//
// # TOML Format
//
//	[ui]
//	hotkey_fg = "white"
//	hotkey_bg = "black"
//	selected_fg = "black"
//	selected_bg = "cyan"
//
//	[highlight]
//	base00 = "#1d1f21"
//	# ... base03, base05, base08 to base0F
//
//	[dialog]
//	error_fg = "white"
//	error_bg = "red"
//	# ... warning_*, info_*, input_*
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine the config dir)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing and colour validation errors
//
// Failing to write the default file is logged, not returned.
package config

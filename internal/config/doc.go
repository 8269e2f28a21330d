// Package config provides local-first configuration for scribe.
//
// Settings live in the project's .scribe/ directory:
//
//	.scribe/
//	├── config.json        # Main configuration (committed to git)
//	├── .gitignore         # Keeps logs out of git
//	└── scribe.log         # Default log file
//
// Example config.json:
//
//	{
//	  "debounce_ms": 500,
//	  "line_numbers": true,
//	  "minimap": false,
//	  "tab_size": 4,
//	  "autosave": false,
//	  "watch_debounce_ms": 300,
//	  "theme": "scribe",
//	  "preview": true,
//	  "log_file": "${HOME}/.cache/scribe.log",
//	  "debug": false
//	}
//
// String values may reference environment variables with $VAR or ${VAR}.
// Command-line flags override whatever the file says for a single run.
package config

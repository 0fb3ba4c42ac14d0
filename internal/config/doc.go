// Package config loads foodie's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/foodie/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/foodie/config.toml
//   - Backend: local
//   - Cookbook database: ~/.local/share/foodie/cookbook.db
//   - API endpoint: 127.0.0.1:7488 (remote backend and foodie serve)
//   - Log directory: ~/.local/share/foodie/logs
//   - Log file: <log_dir>/foodie.log
//
// # TOML Format
//
//	backend = "remote"
//	data_path = "~/recipes/cookbook.db"
//	api_bind = "192.168.1.20:7488"
//	log_dir = "~/.local/share/foodie/logs"
//
// Every field is optional. Tilde expansion is performed on paths. An unknown
// backend is an error; a missing file is not.
package config

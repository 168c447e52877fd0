// Package config provides game preset management for the Treasure Hunt Game.
//
// The config package handles:
//   - Loading game presets from YAML files
//   - Preset validation
//   - Default preset selection
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as .yaml (or .yml / .json) files in the configs
// directory. The file name without extension is the preset ID. Each preset
// defines:
//   - duration_seconds: how long a game lasts
//   - tolerance: match radius around the treasure, in map percent
//   - points_per_find: score awarded per treasure
//   - treasures: optional pinned spots, visited in order; random otherwise
//   - seed: optional seed that makes random placement reproducible
//
// Example:
//
//	name: Classic
//	description: One minute to find as many treasures as possible
//	duration_seconds: 60
//	tolerance: 3
//	points_per_find: 10
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific preset
//	preset, err := manager.LoadConfig("classic")
//
//	// Get the default preset
//	preset = manager.GetDefault()
//
//	// List available presets
//	presets, err := manager.ListConfigs()
//
// Default Selection:
//
// The default preset is "classic" when present, otherwise the first valid
// preset found, otherwise the built-in engine.DefaultGameConfig.
package config

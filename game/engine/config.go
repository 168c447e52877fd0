package engine

import "fmt"

// ValidateGameConfig validates a game preset
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.DurationSeconds < MinDurationSeconds || config.DurationSeconds > MaxDurationSeconds {
		return fmt.Errorf("config validation: duration_seconds must be between %d and %d, got %d",
			MinDurationSeconds, MaxDurationSeconds, config.DurationSeconds)
	}
	if config.Tolerance < 0 || config.Tolerance > MaxTolerance {
		return fmt.Errorf("config validation: tolerance must be between 0 and %d, got %d", MaxTolerance, config.Tolerance)
	}
	if config.PointsPerFind < MinPointsPerFind || config.PointsPerFind > MaxPointsPerFind {
		return fmt.Errorf("config validation: points_per_find must be between %d and %d, got %d",
			MinPointsPerFind, MaxPointsPerFind, config.PointsPerFind)
	}
	seen := make(map[Position]int, len(config.Treasures))
	for i, pos := range config.Treasures {
		if !InBounds(pos) {
			return fmt.Errorf("config validation: treasure %d at (%d,%d) is outside the map [%d,%d]",
				i+1, pos.X, pos.Y, MapMin, MapMax)
		}
		if first, dup := seen[pos]; dup {
			return fmt.Errorf("config validation: treasure %d at (%d,%d) duplicates treasure %d",
				i+1, pos.X, pos.Y, first)
		}
		seen[pos] = i + 1
	}
	return nil
}

// DefaultGameConfig returns the built-in preset used when no preset files exist
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:            "default",
		Description:     "One minute, random treasure, small tolerance",
		DurationSeconds: DefaultDurationSeconds,
		Tolerance:       DefaultTolerance,
		PointsPerFind:   DefaultPointsPerFind,
	}
}

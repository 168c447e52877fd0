// Command validate checks the game presets in a config directory. It checks:
//   - YAML (or JSON) structure and every rule the server enforces when loading,
//     including pinned treasures lying on the map and not repeating
//   - Whether the tolerance is so wide that a single check covers most of the map
//   - How many checks a grid sweep needs to cover the map once
//
// It exits with a non-zero status if any preset is invalid.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/treasurehunt/game/config"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
)

// wideTolerance is the tolerance above which a preset earns a warning
const wideTolerance = engine.MapMax / 4

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// validatePreset loads and validates a single preset file
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	preset, err := config.ParseFile(filePath)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	result.Messages = append(result.Messages, fmt.Sprintf("✓ Name: %s", preset.Name))
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Duration: %ds", preset.DurationSeconds))
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Points per find: %d", preset.PointsPerFind))
	if len(preset.Treasures) > 0 {
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Pinned treasures: %d", len(preset.Treasures)))
	} else {
		result.Messages = append(result.Messages, "✓ Treasures: random")
	}
	if preset.Tolerance > wideTolerance {
		result.Messages = append(result.Messages,
			fmt.Sprintf("⚠ Tolerance %d is wider than %d, most checks will hit", preset.Tolerance, wideTolerance))
	} else {
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Tolerance: %d", preset.Tolerance))
	}
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Sweep: %d checks per pass (step %d)",
		engine.SweepSize(preset.Tolerance), engine.SweepStep(preset.Tolerance)))

	return result
}

// presetFiles lists the preset files in dir, sorted by name
func presetFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// run validates every preset in dir and reports whether all are valid
func run(dir string) (bool, error) {
	files, err := presetFiles(dir)
	if err != nil {
		return false, fmt.Errorf("finding preset files: %w", err)
	}
	if len(files) == 0 {
		return false, fmt.Errorf("no preset files in %s", dir)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Messages {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, msg := range result.Messages {
				fmt.Println("  ❌ " + msg)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
	}
	return allValid, nil
}

func main() {
	cmd := &cli.Command{
		Name:  "validate",
		Usage: "Validate treasure hunt game presets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Value:   "../configs",
				Usage:   "Directory containing presets",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ok, err := run(cmd.String("dir"))
			if err != nil {
				return err
			}
			if !ok {
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

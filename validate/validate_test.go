package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestValidatePreset(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantValid bool
		wantMsg   string
	}{
		{
			name: "valid random preset",
			content: `name: Classic
duration_seconds: 60
tolerance: 3
points_per_find: 10
`,
			wantValid: true,
			wantMsg:   "✓ Treasures: random",
		},
		{
			name: "valid pinned preset",
			content: `name: Pinned
duration_seconds: 30
tolerance: 0
points_per_find: 5
treasures:
  - {x: 10, y: 20}
  - {x: 80, y: 90}
`,
			wantValid: true,
			wantMsg:   "✓ Pinned treasures: 2",
		},
		{
			name: "wide tolerance warns",
			content: `name: Easy
duration_seconds: 60
tolerance: 40
points_per_find: 1
`,
			wantValid: true,
			wantMsg:   "⚠ Tolerance 40",
		},
		{
			name:      "malformed yaml",
			content:   "name: [unterminated",
			wantValid: false,
			wantMsg:   "failed to parse config",
		},
		{
			name: "missing name",
			content: `duration_seconds: 60
tolerance: 3
points_per_find: 10
`,
			wantValid: false,
			wantMsg:   "name is required",
		},
		{
			name: "duration out of range",
			content: `name: Short
duration_seconds: 1
tolerance: 3
points_per_find: 10
`,
			wantValid: false,
			wantMsg:   "duration_seconds",
		},
		{
			name: "treasure off the map",
			content: `name: Off
duration_seconds: 60
tolerance: 3
points_per_find: 10
treasures:
  - {x: 101, y: 5}
`,
			wantValid: false,
			wantMsg:   "outside the map",
		},
		{
			name: "duplicate treasures",
			content: `name: Dup
duration_seconds: 60
tolerance: 3
points_per_find: 10
treasures:
  - {x: 5, y: 5}
  - {x: 5, y: 5}
`,
			wantValid: false,
			wantMsg:   "duplicates treasure 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "preset.yaml", tt.content)

			result := validatePreset(path)
			if result.Valid != tt.wantValid {
				t.Fatalf("Expected valid=%v, got %v (%v)", tt.wantValid, result.Valid, result.Messages)
			}
			if result.File != "preset.yaml" {
				t.Errorf("Expected file name preset.yaml, got %s", result.File)
			}

			found := false
			for _, msg := range result.Messages {
				if strings.Contains(msg, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected a message containing %q, got %v", tt.wantMsg, result.Messages)
			}
		})
	}
}

func TestValidatePreset_MissingFile(t *testing.T) {
	result := validatePreset(filepath.Join(t.TempDir(), "missing.yaml"))
	if result.Valid {
		t.Error("Expected missing file to be invalid")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", "name: Good\nduration_seconds: 60\ntolerance: 3\npoints_per_find: 10\n")

	ok, err := run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ok {
		t.Error("Expected all presets to be valid")
	}

	writeFile(t, dir, "bad.json", `{"name": "", "duration_seconds": 60}`)
	ok, err = run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ok {
		t.Error("Expected an invalid preset to fail the run")
	}
}

func TestRun_EmptyDir(t *testing.T) {
	if _, err := run(t.TempDir()); err == nil {
		t.Error("Expected error for a directory without presets")
	}
}

func TestPresetFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "")
	writeFile(t, dir, "b.yml", "")
	writeFile(t, dir, "c.json", "")
	writeFile(t, dir, "notes.txt", "")

	files, err := presetFiles(dir)
	if err != nil {
		t.Fatalf("presetFiles: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 preset files, got %d: %v", len(files), files)
	}
}

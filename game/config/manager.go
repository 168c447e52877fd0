package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigID is the preset preferred as default when present
const DefaultConfigID = "classic"

// BuiltinConfigID identifies the built-in preset used when no files exist
const BuiltinConfigID = "default"

var presetExtensions = []string{".yaml", ".yml", ".json"}

// Manager handles game preset loading and caching
type Manager struct {
	configDir     string
	defaultID     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new preset manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// LoadConfig loads a preset by ID
func (m *Manager) LoadConfig(id string) (*engine.GameConfig, error) {
	id = trimPresetExt(id)

	m.mu.RLock()
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	if id == BuiltinConfigID {
		return engine.DefaultGameConfig(), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[id]; exists {
		return config, nil
	}

	path, err := m.findPresetFile(id)
	if err != nil {
		return nil, err
	}

	config, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	m.configs[id] = config
	return config, nil
}

// ListConfigs returns information about all available presets
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !hasPresetExt(entry.Name()) {
			continue
		}

		id := trimPresetExt(entry.Name())
		if seen[id] {
			continue
		}

		config, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid presets
			continue
		}
		seen[id] = true

		configs = append(configs, &service.ConfigInfo{
			Filename:        entry.Name(),
			ConfigID:        id,
			Name:            config.Name,
			Description:     config.Description,
			DurationSeconds: config.DurationSeconds,
			Tolerance:       config.Tolerance,
			PointsPerFind:   config.PointsPerFind,
			PinnedTreasures: len(config.Treasures),
		})
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})

	return configs, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// GetDefaultID returns the ID of the default preset
func (m *Manager) GetDefaultID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultID
}

// SetDefault sets the default preset by ID
func (m *Manager) SetDefault(id string) error {
	config, err := m.LoadConfig(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultID = trimPresetExt(id)
	m.defaultConfig = config
	return nil
}

// RefreshCache drops cached presets and reselects the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// ParseFile reads and validates a single preset file
func ParseFile(path string) (*engine.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// loadDefaultConfig picks classic, then the first valid preset, then the built-in one
func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig(DefaultConfigID)
	if err == nil {
		m.setDefault(DefaultConfigID, config)
		return nil
	}

	configs, listErr := m.ListConfigs()
	if listErr != nil || len(configs) == 0 {
		m.setDefault(BuiltinConfigID, engine.DefaultGameConfig())
		return nil
	}

	config, err = m.LoadConfig(configs[0].ConfigID)
	if err != nil {
		m.setDefault(BuiltinConfigID, engine.DefaultGameConfig())
		return nil
	}

	m.setDefault(configs[0].ConfigID, config)
	return nil
}

func (m *Manager) setDefault(id string, config *engine.GameConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultID = id
	m.defaultConfig = config
}

// findPresetFile returns the path of the first existing file for id
func (m *Manager) findPresetFile(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return "", ErrConfigNotFound
	}
	for _, ext := range presetExtensions {
		path := filepath.Join(m.configDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrConfigNotFound
}

func hasPresetExt(name string) bool {
	for _, ext := range presetExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func trimPresetExt(name string) string {
	for _, ext := range presetExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

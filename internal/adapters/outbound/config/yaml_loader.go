package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/plugval/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = ".plugval.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .plugval.yaml, or
// .plugval.toml when no YAML file exists.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the project configuration from projectPath.
// Returns DefaultConfig if neither file exists.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loadTOML(projectPath)
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return finish(FileName, cfg)
}

func finish(name string, cfg domain.ProjectConfig) (domain.ProjectConfig, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if len(override.Properties) > 0 {
		result.Properties = override.Properties
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Jobs > 0 {
		result.Jobs = override.Jobs
	}

	return result
}

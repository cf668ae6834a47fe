package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/openkraft/plugval/internal/domain"
)

// TOMLFileName is the alternative configuration file, read only when
// .plugval.yaml is absent. Dotted property names must be quoted:
//
//	[properties]
//	"plugin.validation" = "verbose"
const TOMLFileName = ".plugval.toml"

func loadTOML(projectPath string) (domain.ProjectConfig, error) {
	path := filepath.Join(projectPath, TOMLFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", TOMLFileName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: unknown key %q", TOMLFileName, undecoded[0].String())
	}
	return finish(TOMLFileName, cfg)
}

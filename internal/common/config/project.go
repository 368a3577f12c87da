package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectConfigName is the per-project override file looked up at the project root
const ProjectConfigName = ".autosave.toml"

var (
	// ErrInvalidProjectConfig is returned when .autosave.toml cannot be decoded
	ErrInvalidProjectConfig = errors.New("invalid project config")
)

// ProjectConfig represents the optional per-project override file.
// Values set here take precedence over the user config for runs inside
// that project.
type ProjectConfig struct {
	Remote string `toml:"remote,omitempty"`
	Branch string `toml:"branch,omitempty"`
	Marker string `toml:"marker,omitempty"`
}

// LoadProject reads the .autosave.toml override from the given project root.
// A missing file returns (nil, nil): the override is optional.
func LoadProject(projectRoot string) (*ProjectConfig, error) {
	path := filepath.Join(projectRoot, ProjectConfigName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var pc ProjectConfig
	if err := toml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidProjectConfig, path, err)
	}

	return &pc, nil
}

// Merge applies a project override on top of the user config,
// returning the resolved configuration for the run.
func (c *Config) Merge(pc *ProjectConfig) *Config {
	merged := *c
	if pc == nil {
		return &merged
	}
	if pc.Remote != "" {
		merged.Remote = pc.Remote
	}
	if pc.Branch != "" {
		merged.Branch = pc.Branch
	}
	if pc.Marker != "" {
		merged.Marker = pc.Marker
	}
	return &merged
}

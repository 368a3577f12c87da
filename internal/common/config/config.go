package config

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrGitUserNotConfigured = errors.New("git user is not configured: set user.name and user.email in ~/.gitconfig")
)

// Defaults applied when neither config file sets a value
const (
	DefaultRemote = "origin"
	DefaultBranch = "main"
	DefaultMarker = "app"
)

// Config represents the application configuration
type Config struct {
	Remote string    `yaml:"remote"`
	Branch string    `yaml:"branch"`
	Marker string    `yaml:"marker"`
	Git    GitConfig `yaml:"git"`
	Log    LogConfig `yaml:"log"`
}

// GitConfig holds git user settings used for remediation hints
type GitConfig struct {
	User  string `yaml:"user"`
	Email string `yaml:"email"`
}

// LogConfig holds file logging settings
type LogConfig struct {
	File bool `yaml:"file"`
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/autosave/config.yaml (XDG standard - priority)
// 2. ~/.autosave/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "autosave", "config.yaml"),
		filepath.Join(home, ".autosave", "config.yaml"),
	}, nil
}

// FindConfigPath returns the first existing config file path.
// Returns an empty string if no config file exists.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// Load reads configuration from the first available config file.
// A missing file is not an error: built-in defaults apply.
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return defaultConfig(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Remote: DefaultRemote,
		Branch: DefaultBranch,
		Marker: DefaultMarker,
	}
}

// applyDefaults fills in any field an explicit config file left empty
func (c *Config) applyDefaults() {
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
}

// GetGitUser returns the git user name and email.
// It first tries to read from ~/.gitconfig, then falls back to the autosave config.
// Used only to sharpen commit-failure remediation hints.
func (c *Config) GetGitUser() (user, email string, err error) {
	gitconfigPath, err := defaultGitconfigPath()
	if err == nil {
		user, email, err = parseGitconfig(gitconfigPath)
		if err == nil && user != "" && email != "" {
			return user, email, nil
		}
	}

	if c.Git.User != "" && c.Git.Email != "" {
		return c.Git.User, c.Git.Email, nil
	}

	return "", "", ErrGitUserNotConfigured
}

// defaultGitconfigPath returns the default gitconfig file path
func defaultGitconfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gitconfig"), nil
}

// parseGitconfig reads user.name and user.email from a gitconfig file
func parseGitconfig(path string) (user, email string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	return ParseGitconfigContent(file)
}

// ParseGitconfigContent parses gitconfig content from an io.Reader.
// The gitconfig file uses INI format; only the [user] section is read.
func ParseGitconfigContent(r io.Reader) (user, email string, err error) {
	scanner := bufio.NewScanner(r)
	inUserSection := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		// Check for section header
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.ToLower(strings.Trim(line, "[]"))
			inUserSection = section == "user"
			continue
		}

		// Parse key-value pairs in user section
		if inUserSection {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(strings.ToLower(parts[0]))
			value := strings.TrimSpace(parts[1])

			switch key {
			case "name":
				user = value
			case "email":
				email = value
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", "", err
	}

	return user, email, nil
}

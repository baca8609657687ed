package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
	"github.com/patrick-levesque/gitignore-assistant/internal/util"
)

const (
	keyringService = "com.github.patrick-levesque.gitignore-assistant"
	// ConfigFileName is the policy file, discovered by walking up from cwd.
	ConfigFileName = ".gia.yaml"
	// Version is the current config schema version.
	Version = 1
)

// DefaultBaseEntries is the stock baseline: macOS Finder metadata.
var DefaultBaseEntries = []string{".DS_Store"}

// Remote describes an SFTP-reachable workspace holding the ignore file.
// The password never goes into the yaml; it lives in the OS keyring.
type Remote struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Path     string `yaml:"path"`
	Password string `yaml:"-"`
}

// Config holds the recognized formatting policies plus the optional remote
// workspace. Location is where the file was found, empty when running on
// defaults.
type Config struct {
	Version                 uint8    `yaml:"version"`
	IgnoreFile              string   `yaml:"ignore_file"`
	BaseEntries             []string `yaml:"base_entries"`
	AddWithLeadingSlash     bool     `yaml:"add_with_leading_slash"`
	TrailingSlashForFolders bool     `yaml:"trailing_slash_for_folders"`
	RemoveEmptyLines        bool     `yaml:"remove_empty_lines"`
	RemoveComments          bool     `yaml:"remove_comments"`
	SortWhenCleaning        bool     `yaml:"sort_when_cleaning"`
	Remote                  *Remote  `yaml:"remote,omitempty"`
	Location                string   `yaml:"-"`
}

// Default returns a config with every policy at its stock value.
func Default() *Config {
	return &Config{
		Version:                 Version,
		IgnoreFile:              ".gitignore",
		BaseEntries:             append([]string(nil), DefaultBaseEntries...),
		AddWithLeadingSlash:     true,
		TrailingSlashForFolders: true,
	}
}

// Options maps the config onto the engine's cleaning options.
func (c *Config) Options() ignore.Options {
	return ignore.Options{
		BaseEntries:             c.BaseEntries,
		AddWithLeadingSlash:     c.AddWithLeadingSlash,
		TrailingSlashForFolders: c.TrailingSlashForFolders,
		RemoveEmptyLines:        c.RemoveEmptyLines,
		RemoveComments:          c.RemoveComments,
		Sort:                    c.SortWhenCleaning,
	}
}

func (c *Config) fullUser() string {
	return fmt.Sprintf("%s@%s:%d", c.Remote.User, c.Remote.Host, c.Remote.Port)
}

func findConfigFile() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		fp := filepath.Join(wd, ConfigFileName)
		if util.Exists(fp) {
			return fp, nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}
	return "", errors.New("no " + ConfigFileName + " found")
}

// Load finds and decodes the nearest config file. A missing file is not an
// error: the stock defaults apply. Absent keys keep their default because
// decoding happens into a prefilled struct.
func Load() (*Config, error) {
	cfp, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}

	f, err := os.Open(cfp)
	if err != nil {
		return nil, errors.Join(errors.New("failed to open file "+ConfigFileName), err)
	}
	defer f.Close()

	c := Default()
	c.Location = cfp
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, errors.Join(errors.New("failed to yaml decode from file "+ConfigFileName), err)
	}

	if c.Remote != nil {
		if pwd, err := keyring.Get(keyringService, c.fullUser()); err == nil {
			c.Remote.Password = pwd
		}
	}

	return c, nil
}

// Save writes the config to its location, creating it at dir when the
// config is new. Remote credentials go to the keyring.
func (c *Config) Save(dir string) error {
	if c.Location == "" {
		c.Location = filepath.Join(dir, ConfigFileName)
	}
	c.Version = Version

	f, err := os.Create(c.Location)
	if err != nil {
		return errors.Join(errors.New("failed to open file "+ConfigFileName), err)
	}
	defer f.Close()

	ye := yaml.NewEncoder(f)
	ye.SetIndent(4)
	if err := ye.Encode(c); err != nil {
		return errors.Join(errors.New("failed to yaml encode into file "+ConfigFileName), err)
	}

	if c.Remote != nil && c.Remote.Password != "" {
		if err := keyring.Set(keyringService, c.fullUser(), c.Remote.Password); err != nil {
			return errors.Join(errors.New("failed to set keyring credentials"), err)
		}
	}

	return nil
}

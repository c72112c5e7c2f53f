// Package config holds the explicit project configuration: the project root
// and everything the pipeline needs to find its files. Nothing in the
// codebase reads the working directory implicitly; the root is resolved once
// and passed down.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/registry"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "releasectl.toml"

// RecordFileName is the canonical version record file.
const RecordFileName = "version.toml"

// DefaultBackupDir is where update backups are stored, relative to the root.
const DefaultBackupDir = ".version-backups"

// Config is the resolved project configuration.
type Config struct {
	// Root is the project root directory. Set by the loader, not by TOML.
	Root string `toml:"-"`

	// RecordFile is the version record path relative to Root.
	RecordFile string `toml:"record_file"`

	// BackupDir stores backups; relative to Root unless absolute. A leading
	// ~ is expanded to the user's home directory.
	BackupDir string `toml:"backup_dir"`

	// BuildCheck is the external validation command argv. An empty list
	// disables the build check.
	BuildCheck []string `toml:"build_check"`

	// Files overrides or extends the built-in pattern registry.
	Files []registry.SpecDef `toml:"files"`
}

// Load reads releasectl.toml under root when present and applies defaults.
// A missing config file is not an error; defaults describe a standard project.
func Load(root string) (*Config, error) {
	cfg := &Config{
		Root:       root,
		RecordFile: RecordFileName,
		BackupDir:  DefaultBackupDir,
		BuildCheck: []string{"cargo", "check", "--quiet"},
	}

	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadErrFmt, path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseErrFmt, path, err)
	}
	cfg.Root = root
	if cfg.RecordFile == "" {
		cfg.RecordFile = RecordFileName
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = DefaultBackupDir
	}

	expanded, err := homedir.Expand(cfg.BackupDir)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandBackupDirFmt, cfg.BackupDir, err)
	}
	cfg.BackupDir = expanded

	return cfg, nil
}

// RecordPath returns the absolute path of the version record.
func (c *Config) RecordPath() string {
	return filepath.Join(c.Root, filepath.FromSlash(c.RecordFile))
}

// Registry compiles the pattern registry with any configured overrides.
func (c *Config) Registry() (*registry.Registry, error) {
	return registry.Build(c.Files)
}

// FindProjectRoot walks up from start looking for a directory containing the
// version record or a releasectl.toml. Reports false when no ancestor
// qualifies.
func FindProjectRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		for _, marker := range []string{RecordFileName, ConfigFileName} {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && !info.IsDir() {
				return dir, true, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

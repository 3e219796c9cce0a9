package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the optional per-site configuration file, looked up in the root.
	FileName = "labsite.toml"
	// EnvFileName holds optional LABSITE_* overrides, looked up in the root.
	EnvFileName = ".env"
)

// Config describes the content tree layout. Relative paths are resolved
// against Root.
type Config struct {
	Root string `toml:"-"`

	PubsDir     string `toml:"pubs_dir"`
	ContentFile string `toml:"content_file"`
	SidecarFile string `toml:"sidecar_file"`

	FeatureOutput string `toml:"feature_output"`

	RosterFile    string `toml:"roster_file"`
	MembersOutDir string `toml:"members_out_dir"`
	PageExtension string `toml:"page_extension"`
	Locale        string `toml:"locale"`
}

// Default returns the layout used by the site when nothing is configured.
func Default(root string) *Config {
	return &Config{
		Root:          root,
		PubsDir:       "pubs",
		ContentFile:   "index.qmd",
		SidecarFile:   "_metadata.yml",
		FeatureOutput: filepath.Join("_includes", "feature.md"),
		RosterFile:    filepath.Join("data", "members.json"),
		MembersOutDir: "membres",
		PageExtension: ".qmd",
		Locale:        "fr_FR",
	}
}

// Load builds the configuration for root: defaults, then labsite.toml,
// then .env, then the process environment.
func Load(root string) (*Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	cfg := Default(abs)

	if err := cfg.loadFile(filepath.Join(abs, FileName)); err != nil {
		return nil, err
	}

	dotenv, err := godotenv.Read(filepath.Join(abs, EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", EnvFileName, err)
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		return fallback
	}

	cfg.PubsDir = getEnv("LABSITE_PUBS_DIR", cfg.PubsDir)
	cfg.ContentFile = getEnv("LABSITE_CONTENT_FILE", cfg.ContentFile)
	cfg.SidecarFile = getEnv("LABSITE_SIDECAR_FILE", cfg.SidecarFile)
	cfg.FeatureOutput = getEnv("LABSITE_FEATURE_OUTPUT", cfg.FeatureOutput)
	cfg.RosterFile = getEnv("LABSITE_ROSTER_FILE", cfg.RosterFile)
	cfg.MembersOutDir = getEnv("LABSITE_MEMBERS_OUT_DIR", cfg.MembersOutDir)
	cfg.PageExtension = getEnv("LABSITE_PAGE_EXTENSION", cfg.PageExtension)
	cfg.Locale = getEnv("LABSITE_LOCALE", cfg.Locale)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", FileName, err)
	}
	if err := toml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse %s: %w", FileName, err)
	}
	return nil
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func (c *Config) PubsPath() string       { return c.resolve(c.PubsDir) }
func (c *Config) FeaturePath() string    { return c.resolve(c.FeatureOutput) }
func (c *Config) RosterPath() string     { return c.resolve(c.RosterFile) }
func (c *Config) MembersOutPath() string { return c.resolve(c.MembersOutDir) }

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of every app served by this module.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Storefront StorefrontConfig `yaml:"storefront"`
	Languages  LanguagesConfig  `yaml:"languages"`
	Countries  CountriesConfig  `yaml:"countries"`
	Portfolio  PortfolioConfig  `yaml:"portfolio"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig selects the repository backend for the storefront stores.
type StorageConfig struct {
	Driver     string `yaml:"driver"` // json, sqlite
	SQLitePath string `yaml:"sqlite_path"`
}

type StorefrontConfig struct {
	StaticDir    string `yaml:"static_dir"`
	ProductsFile string `yaml:"products_file"`
	FAQsFile     string `yaml:"faqs_file"`
	LoyaltyFile  string `yaml:"loyalty_file"`
	FeedbackFile string `yaml:"feedback_file"`
	Locale       string `yaml:"locale"`
}

type LanguagesConfig struct {
	StaticDir string `yaml:"static_dir"`
	DataFile  string `yaml:"data_file"`
	Locale    string `yaml:"locale"`
}

type CountriesConfig struct {
	StaticDir string `yaml:"static_dir"`
	APIURL    string `yaml:"api_url"`
	// SnapshotFile, when set, replaces the remote API with a local JSON file.
	SnapshotFile string `yaml:"snapshot_file"`
	Timeout      string `yaml:"timeout"`
	Locale       string `yaml:"locale"`
	// MissingLabel buckets countries without a key value; empty drops them.
	MissingLabel string `yaml:"missing_label"`
}

type PortfolioConfig struct {
	StaticDir  string `yaml:"static_dir"`
	ResumeDir  string `yaml:"resume_dir"`
	ResumeName string `yaml:"resume_name"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console, auto
}

const DefaultCountriesURL = "https://restcountries.com/v3.1/all/?fields=name,region,subregion,capital,currencies,languages,flags"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8000"},
		Storage: StorageConfig{
			Driver:     "json",
			SQLitePath: "data/coursework.db",
		},
		Storefront: StorefrontConfig{
			StaticDir:    "web/storefront",
			ProductsFile: "data/products.json",
			FAQsFile:     "data/faqs.json",
			LoyaltyFile:  "data/loyalty.json",
			FeedbackFile: "data/feedback.json",
			Locale:       "en",
		},
		Languages: LanguagesConfig{
			StaticDir: "web/languages",
			DataFile:  "data/languages.json",
			Locale:    "en",
		},
		Countries: CountriesConfig{
			StaticDir: "web/countries",
			APIURL:    DefaultCountriesURL,
			Timeout:   "15s",
			Locale:    "en",
		},
		Portfolio: PortfolioConfig{
			StaticDir:  "web/portfolio",
			ResumeDir:  "web/portfolio/files",
			ResumeName: "resume",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if driver := os.Getenv("COURSEWORK_STORAGE"); driver != "" {
		c.Storage.Driver = driver
	}
	if url := os.Getenv("COUNTRIES_API_URL"); url != "" {
		c.Countries.APIURL = url
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid storage driver %q: must be json or sqlite", c.Storage.Driver)
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
	}
	if _, err := time.ParseDuration(c.Countries.Timeout); err != nil {
		return fmt.Errorf("invalid countries.timeout %q: %w", c.Countries.Timeout, err)
	}
	if c.Countries.APIURL == "" && c.Countries.SnapshotFile == "" {
		return fmt.Errorf("countries needs api_url or snapshot_file")
	}
	switch c.Logging.Format {
	case "json", "console", "auto":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// CountriesTimeout returns the parsed fetch timeout.
func (c *Config) CountriesTimeout() time.Duration {
	d, err := time.ParseDuration(c.Countries.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/spendlog/spendlog/internal/logger"
)

const (
	// BackendJSONFile persists the ledger as a single JSON document.
	BackendJSONFile = "jsonfile"
	// BackendSQLite persists the ledger in a SQLite database.
	BackendSQLite = "sqlite"
)

type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logger  logger.Config `toml:"logger"`
}

const (
	defaultBackend   = BackendJSONFile
	defaultDataFile  = "spendlog.json"
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

func defaults() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: defaultBackend,
			Path:    defaultDataFile,
		},
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
	}
}

func (c *Config) parseEnv() {
	if backend := os.Getenv("SPENDLOG_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if path := os.Getenv("SPENDLOG_DATA"); path != "" {
		c.Storage.Path = path
	}

	if level := os.Getenv("SPENDLOG_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("SPENDLOG_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("SPENDLOG_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendJSONFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// Parse builds the configuration from defaults, an optional TOML file,
// and SPENDLOG_* environment variables, in increasing precedence. A
// missing config file is not an error. A .env file, when present, is
// loaded before the environment is read.
func Parse(file string) (*Config, error) {
	// best effort: absence of .env is the normal case
	_ = godotenv.Load()

	conf := defaults()

	if file != "" {
		bytes, err := os.ReadFile(file)
		if err == nil {
			if err := toml.Unmarshal(bytes, conf); err != nil {
				return nil, fmt.Errorf("unable to parse config file %s: %w", file, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	conf.parseEnv()

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

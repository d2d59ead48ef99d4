package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "beatmap.cfg.json"

// ErrConfigNotFound is returned by Load when no config file exists. The
// defaults remain in effect.
var ErrConfigNotFound = errors.New("config file not found")

// MemoryConfig holds JSON file archive settings
type MemoryConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// SQLiteConfig holds SQLite archive settings
type SQLiteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// PostgresConfig holds Postgres connection settings
type PostgresConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// DSN returns the libpq connection string for c.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		c.Host, c.Port, c.Username, c.Password, c.Database)
}

// ArchiveConfig selects where converted beatmaps are archived.
type ArchiveConfig struct {
	Enabled  bool           `json:"enabled" mapstructure:"enabled"`
	Type     string         `json:"type" mapstructure:"type"`
	Memory   MemoryConfig   `json:"memory" mapstructure:"memory"`
	SQLite   SQLiteConfig   `json:"sqlite" mapstructure:"sqlite"`
	Postgres PostgresConfig `json:"db" mapstructure:"db"`
}

// LoggingConfig holds log sink settings
type LoggingConfig struct {
	Level          string
	LogsDir        string
	GraylogEnabled bool
	GraylogAddress string
}

// OutputConfig controls how converted documents and binaries are written.
type OutputConfig struct {
	Indent  string `json:"indent" mapstructure:"indent"`
	Padding string `json:"padding" mapstructure:"padding"`
}

// Load reads configuration from the JSON file in configDir and sets default
// values. Environment variables prefixed BEATMAP_ override file values.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("output.indent", "  ")
	viper.SetDefault("output.padding", "legacy")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.type", "memory")
	viper.SetDefault("archive.memory.outputDir", "./archive")
	viper.SetDefault("archive.memory.compressOutput", true)
	viper.SetDefault("archive.sqlite.path", "./beatmaps.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "beatmaps")

	viper.SetEnvPrefix("BEATMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w in %s", ErrConfigNotFound, configDir)
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetArchiveConfig returns the archive backend configuration.
func GetArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		Enabled: viper.GetBool("archive.enabled"),
		Type:    viper.GetString("archive.type"),
		Memory: MemoryConfig{
			OutputDir:      viper.GetString("archive.memory.outputDir"),
			CompressOutput: viper.GetBool("archive.memory.compressOutput"),
		},
		SQLite: SQLiteConfig{
			Path: viper.GetString("archive.sqlite.path"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetString("db.port"),
			Username: viper.GetString("db.username"),
			Password: viper.GetString("db.password"),
			Database: viper.GetString("db.database"),
		},
	}
}

// GetLoggingConfig returns the logging configuration.
func GetLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:          viper.GetString("logLevel"),
		LogsDir:        viper.GetString("logsDir"),
		GraylogEnabled: viper.GetBool("graylog.enabled"),
		GraylogAddress: viper.GetString("graylog.address"),
	}
}

// GetOutputConfig returns the conversion output configuration.
func GetOutputConfig() OutputConfig {
	return OutputConfig{
		Indent:  viper.GetString("output.indent"),
		Padding: viper.GetString("output.padding"),
	}
}

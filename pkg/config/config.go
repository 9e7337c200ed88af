package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ORGUSERS_"

type PostgresConfig struct {
	ConnectionString string `koanf:"connectionString"`
	Host             string `koanf:"host"`
	Port             string `koanf:"port"`
	Username         string `koanf:"username"`
	Password         string `koanf:"password"`
	Database         string `koanf:"database"`
	MigrationsPath   string `koanf:"migrationsPath"`
}

func (pgc *PostgresConfig) GetPostgresDsn() string {
	if pgc.ConnectionString != "" {
		return pgc.ConnectionString
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgc.Host,
		pgc.Port,
		pgc.Username,
		pgc.Password,
		pgc.Database,
	)
}

// GetMigrationUrl returns the DSN in URL form, which golang-migrate requires.
func (pgc *PostgresConfig) GetMigrationUrl() string {
	if pgc.ConnectionString != "" {
		return pgc.ConnectionString
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgc.Username,
		pgc.Password,
		pgc.Host,
		pgc.Port,
		pgc.Database,
	)
}

type ServerConfig struct {
	Ip             string   `koanf:"ip"`
	Port           string   `koanf:"port"`
	AllowedOrigins []string `koanf:"allowedOrigins"`
}

func (srvc *ServerConfig) GetServerAddress() string {
	if srvc.Ip != "" {
		return fmt.Sprintf("%s:%s", srvc.Ip, srvc.Port)
	}

	return fmt.Sprintf(":%s", srvc.Port)
}

type OtelConfig struct {
	Enabled       bool   `koanf:"enabled"`
	TraceEndpoint string `koanf:"traceEndpoint"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	Db       int    `koanf:"db"`
}

type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

type EventQueueConfig struct {
	BatchSize    int           `koanf:"batchSize"`
	PollInterval time.Duration `koanf:"pollInterval"`
}

// GetBatchSize falls back to 50 when unset.
func (eqc *EventQueueConfig) GetBatchSize() int {
	if eqc.BatchSize <= 0 {
		return 50
	}

	return eqc.BatchSize
}

// GetPollInterval falls back to five seconds when unset.
func (eqc *EventQueueConfig) GetPollInterval() time.Duration {
	if eqc.PollInterval <= 0 {
		return 5 * time.Second
	}

	return eqc.PollInterval
}

type Config struct {
	Server         ServerConfig     `koanf:"server"`
	Otel           OtelConfig       `koanf:"otel"`
	PostgresConfig PostgresConfig   `koanf:"postgresql"`
	Redis          RedisConfig      `koanf:"redis"`
	Log            LogConfig        `koanf:"log"`
	EventQueue     EventQueueConfig `koanf:"eventQueue"`
	JwtSecret      string           `koanf:"jwtSecret"`
}

type ConfigReader interface {
	Read() *Config
}

func NewConfigReader() ConfigReader {
	mode := os.Getenv("MODE")
	if mode == "development" {
		return &JsonConfig{}
	}
	return &EnvConfig{}
}

func getCwd() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "../..")
}

type JsonConfig struct {
	ConfigPath string
}

func (c *JsonConfig) Read() *Config {
	koanfInstance := koanf.New(".")

	configFilePath := c.ConfigPath
	if configFilePath == "" {
		rootDir := getCwd()
		configFilePath = filepath.Join(rootDir, "config.json")
	}

	configPath := file.Provider(configFilePath)
	if err := koanfInstance.Load(configPath, json.Parser()); err != nil {
		panic(fmt.Sprintf("error occurred while reading config: %s", err))
	}

	var config Config
	if err := koanfInstance.Unmarshal("", &config); err != nil {
		panic(fmt.Sprintf("error occurred while unmarshalling config: %s", err))
	}

	return &config
}

type EnvConfig struct {
	// DotenvPath is loaded before the environment is read. A missing file is ignored.
	DotenvPath string
}

func (c *EnvConfig) Read() *Config {
	dotenvPath := c.DotenvPath
	if dotenvPath == "" {
		dotenvPath = ".env"
	}

	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("error occurred while loading dotenv file: %s", err))
	}

	koanfInstance := koanf.New(".")

	err := koanfInstance.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		panic(fmt.Sprintf("error occurred while reading env config: %s", err))
	}

	var config Config
	if err := koanfInstance.Unmarshal("", &config); err != nil {
		panic(fmt.Sprintf("error occurred while unmarshalling config: %s", err))
	}

	return &config
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Generation GenerationConfig
	Upload     UploadConfig
	Output     OutputConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	CacheTTLs  CacheTTLConfig
	DB         DBConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

// GeminiConfig holds the generation API settings. APIKey is injected into the
// client at construction time.
type GeminiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type GenerationConfig struct {
	QuestionsPerRow int
}

type UploadConfig struct {
	Dir string
}

type OutputConfig struct {
	Dir             string
	DefaultFilename string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheTTLConfig struct {
	Generation string
}

type DBConfig struct {
	Path string
}

const (
	DefaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultOutputFilename  = "generated_questions.csv"
	DefaultQuestionsPerRow = 3
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.body_limit_mb", 10)

	v.SetDefault("gemini.base_url", DefaultGeminiBaseURL)
	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("gemini.timeout", "60s")

	v.SetDefault("generation.questions_per_row", DefaultQuestionsPerRow)

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("output.dir", defaultDownloadsDir())
	v.SetDefault("output.default_filename", DefaultOutputFilename)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("cache_ttls.generation", "24h")
	v.SetDefault("db.path", "quiz-forge.db")
}

// defaultDownloadsDir resolves ~/Downloads, falling back to the working directory.
func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// LoadConfig reads config.yaml when present and overlays environment variables.
// A missing config file is not an error; every key has a default.
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file path.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Add config paths based on environment
		if os.Getenv("ENV") == "test" {
			v.AddConfigPath("../../config")
			v.AddConfigPath("../../")
		} else {
			v.AddConfigPath(".")
			v.AddConfigPath("./config")
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	geminiTimeout, err := parseDuration(v.GetString("gemini.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid gemini.timeout: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Gemini: GeminiConfig{
			BaseURL: strings.TrimRight(v.GetString("gemini.base_url"), "/"),
			Model:   v.GetString("gemini.model"),
			APIKey:  v.GetString("gemini.api_key"),
			Timeout: geminiTimeout,
		},
		Generation: GenerationConfig{
			QuestionsPerRow: v.GetInt("generation.questions_per_row"),
		},
		Upload: UploadConfig{
			Dir: v.GetString("upload.dir"),
		},
		Output: OutputConfig{
			Dir:             v.GetString("output.dir"),
			DefaultFilename: v.GetString("output.default_filename"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Generation: v.GetString("cache_ttls.generation"),
		},
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env == "production" {
		config.Logger.Env = env
	}

	if config.Generation.QuestionsPerRow <= 0 {
		config.Generation.QuestionsPerRow = DefaultQuestionsPerRow
	}
	if config.Output.DefaultFilename == "" {
		config.Output.DefaultFilename = DefaultOutputFilename
	}

	return config, nil
}

// ParseTTLStringOrDefault parses a duration string, returning def when it is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// OutputPath resolves the destination of a generated CSV. Only the base name of
// filename is used so callers cannot escape the output directory.
func (c *Config) OutputPath(filename string) string {
	name := filepath.Base(filepath.Clean(filename))
	if filename == "" || name == "." || name == string(filepath.Separator) {
		name = c.Output.DefaultFilename
	}
	return filepath.Join(c.Output.Dir, name)
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,   default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Gemini    GeminiConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=matchfit"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type GeminiConfig struct {
	APIKey      string        `env:"GEMINI_API_KEY"`
	BaseURL     string        `env:"GEMINI_BASE_URL,     default=https://generativelanguage.googleapis.com"`
	TextModel   string        `env:"GEMINI_TEXT_MODEL,   default=gemini-3-flash-preview"`
	VisionModel string        `env:"GEMINI_VISION_MODEL, default=gemini-3-pro-preview"`
	Timeout     time.Duration `env:"GEMINI_TIMEOUT,      default=60s"`
}

// BootstrapConfig seeds the superuser pair that exists outside the user store.
// The identifier is reserved: registration rejects it.
type BootstrapConfig struct {
	AdminIdentifier string `env:"BOOTSTRAP_ADMIN_IDENTIFIER, default=matchfit"`
	AdminPassword   string `env:"BOOTSTRAP_ADMIN_PASSWORD,   default=matchfit123?!"`
	AdminName       string `env:"BOOTSTRAP_ADMIN_NAME,       default=Matchfit Admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

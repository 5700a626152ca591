package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Keys     APIKeys
	Outbound OutboundConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret            string
	SessionTTLHours      int
	StateTTLMinutes      int
	ScalekitEnvURL       string
	ScalekitClientID     string
	ScalekitClientSecret string
	ScalekitRedirectURI  string
}

type APIKeys struct {
	ZenRows        string
	OpenAI         string
	OpenAIEndpoint string
	OpenAIModel    string
	IngestTopic    string
}

// OutboundConfig makes the timeout on every outbound HTTP call explicit
// instead of relying on client defaults.
type OutboundConfig struct {
	TimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", ""),
			SessionTTLHours:      getEnvAsInt("SESSION_TTL_HOURS", 24),
			StateTTLMinutes:      getEnvAsInt("STATE_TTL_MINUTES", 10),
			ScalekitEnvURL:       getEnv("SCALEKIT_ENVIRONMENT_URL", ""),
			ScalekitClientID:     getEnv("SCALEKIT_CLIENT_ID", ""),
			ScalekitClientSecret: getEnv("SCALEKIT_CLIENT_SECRET", ""),
			ScalekitRedirectURI:  getEnv("SCALEKIT_REDIRECT_URI", ""),
		},
		Keys: APIKeys{
			ZenRows:        getEnv("ZENROWS_API_KEY", ""),
			OpenAI:         getEnv("OPENAI_API_KEY", ""),
			OpenAIEndpoint: getEnv("OPENAI_ENDPOINT", "https://api.openai.com"),
			OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			IngestTopic:    getEnv("KNOWLEDGE_INGESTED_TOPIC_NAME", "KNOWLEDGE_INGESTED"),
		},
		Outbound: OutboundConfig{
			TimeoutSeconds: getEnvAsInt("OUTBOUND_TIMEOUT_SECONDS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

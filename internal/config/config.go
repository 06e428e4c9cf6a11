package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Search   SearchConfig
	Qnet     QnetConfig
	Roadmap  RoadmapConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	EngineLogFilePath  string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
	// RunAPIKey protects the service-to-service run endpoint.
	RunAPIKey string
}

type AIConfig struct {
	Provider string // "openai" or "gemini"
	Model    string
	OpenAI   string
	Gemini   string
}

type SearchConfig struct {
	TavilyAPIKey string
}

type QnetConfig struct {
	ServiceKey string
}

type RoadmapConfig struct {
	SearchTimeout     time.Duration
	RuleSearchTimeout time.Duration
	RegistryTimeout   time.Duration
	GenerateTimeout   time.Duration
	EventTopic        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			EngineLogFilePath:  getEnv("ENGINE_LOG_FILE_PATH", "roadmap-engine.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			RunAPIKey: getEnv("ROADMAP_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider: getEnv("LLM_PROVIDER", "openai"),
			Model:    getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAI:   getEnv("OPENAI_API_KEY", ""),
			Gemini:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Search: SearchConfig{
			TavilyAPIKey: getEnv("TAVILY_API_KEY", ""),
		},
		Qnet: QnetConfig{
			ServiceKey: getEnv("QNET_SERVICE_KEY", ""),
		},
		Roadmap: RoadmapConfig{
			SearchTimeout:     getEnvAsDuration("ROADMAP_SEARCH_TIMEOUT", 10*time.Second),
			RuleSearchTimeout: getEnvAsDuration("ROADMAP_RULE_SEARCH_TIMEOUT", 8*time.Second),
			RegistryTimeout:   getEnvAsDuration("ROADMAP_REGISTRY_TIMEOUT", 5*time.Second),
			GenerateTimeout:   getEnvAsDuration("ROADMAP_GENERATE_TIMEOUT", 120*time.Second),
			EventTopic:        getEnv("ROADMAP_EVENT_TOPIC_NAME", "ROADMAP_GENERATED"),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

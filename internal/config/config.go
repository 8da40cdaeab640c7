package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"profile-chat-be/internal/constant"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Keys      APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RateLimitMax       int
	IngestTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type CacheConfig struct {
	Backend    string // "redis", "memory" or "none"
	RedisURL   string
	TTLSeconds int
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "groq" or "ollama"
	LLMModel          string
	GroqBaseURL       string
	SystemPrompt      string // inline template, wins over the file
	SystemPromptFile  string
}

type RetrievalConfig struct {
	TopK        int
	MaxDistance float64
}

type APIKeys struct {
	Groq         string
	GoogleGemini string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "8000"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", strings.Join([]string{
				"https://coryfitzpatrick.com",
				"https://www.coryfitzpatrick.com",
				"https://fitzmx6.github.io",
				"http://fitzmx6.github.io",
				"http://localhost",
				"http://localhost:3000",
				"http://localhost:8000",
				"http://localhost:8080",
			}, ",")),
			RateLimitMax: getEnvAsInt("RATE_LIMIT_MAX", constant.RateLimitMax),
			IngestTopic:  getEnv("INGEST_TOPIC_NAME", "EMBED_PROFILE_RECORD"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Cache: CacheConfig{
			Backend:    getEnv("CACHE_BACKEND", "redis"),
			RedisURL:   getEnv("REDIS_URL", ""),
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", constant.DefaultCacheTTLSeconds),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			LLMModel:          getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
			GroqBaseURL:       getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			SystemPrompt:      os.Getenv("SYSTEM_PROMPT"),
			SystemPromptFile:  getEnv("SYSTEM_PROMPT_FILE", "system_prompt.txt"),
		},
		Retrieval: RetrievalConfig{
			TopK:        getEnvAsInt("RAG_TOP_K", constant.RetrievalTopK),
			MaxDistance: getEnvAsFloat("RAG_MAX_DISTANCE", constant.RetrievalMaxDistance),
		},
		Keys: APIKeys{
			Groq:         getEnv("GROQ_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

package bootstrap

import (
	"context"
	"log"
	"time"

	"profile-chat-be/internal/config"
	"profile-chat-be/internal/controller"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/repository/implementation"
	"profile-chat-be/internal/service"
	"profile-chat-be/pkg/embedding"
	"profile-chat-be/pkg/llm/factory"
	"profile-chat-be/pkg/rag"
	"profile-chat-be/pkg/rag/cache"
	"profile-chat-be/pkg/rag/prompt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Container wires every shared handle once at startup: embedding provider,
// LLM client, repository, cache and prompt template are constructed here and
// shared read-only across requests.
type Container struct {
	ChatController controller.IChatController
	MetaController controller.IMetaController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Embedding Provider
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.GroqBaseURL,
		cfg.Keys.Groq,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Response Cache: optional backing store, absent means always-miss.
	cacheStore := newCacheStore(cfg, sysLogger)
	responseCache := cache.NewResponseCache(
		cacheStore,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		sysLogger,
	)

	profileRepo := implementation.NewProfileRepository(db)

	retriever := rag.NewRetriever(
		embeddingProvider,
		profileRepo,
		cfg.Retrieval.TopK,
		cfg.Retrieval.MaxDistance,
		sysLogger,
	)

	prompts := prompt.NewBuilder(cfg.Ai.SystemPrompt, cfg.Ai.SystemPromptFile)

	chatService := service.NewChatService(retriever, responseCache, prompts, llmProvider, sysLogger)

	return &Container{
		ChatController: controller.NewChatController(chatService, sysLogger),
		MetaController: controller.NewMetaController(profileRepo, cfg.Ai.LLMModel, cfg.Ai.LLMProvider),
		Logger:         sysLogger,
	}
}

func newCacheStore(cfg *config.Config, sysLogger logger.ILogger) cache.Store {
	switch cfg.Cache.Backend {
	case "redis":
		if cfg.Cache.RedisURL == "" {
			log.Printf("[INFO] No REDIS_URL configured, response caching disabled")
			return nil
		}
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Response caching disabled", err)
			return nil
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			// Keep the store anyway: per-operation failures degrade to
			// misses, and Redis may come up later.
			log.Printf("[WARN] Redis ping failed: %v", err)
		} else {
			log.Printf("[INFO] Connected to Redis cache")
		}
		return cache.NewRedisStore(rdb)
	case "memory":
		log.Printf("[INFO] Using in-memory response cache")
		return cache.NewMemoryStore(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	default:
		log.Printf("[INFO] Response caching disabled (CACHE_BACKEND=%s)", cfg.Cache.Backend)
		return nil
	}
}

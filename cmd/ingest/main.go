package main

import (
	"context"
	"flag"
	"log"

	"profile-chat-be/internal/config"
	"profile-chat-be/internal/model"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/repository/implementation"
	"profile-chat-be/internal/service"
	"profile-chat-be/pkg/database"
	"profile-chat-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Rebuilds the profile vector index from a JSONL corpus file. The existing
// table contents are replaced wholesale, so a failed run can simply be
// retried.
func main() {
	corpusPath := flag.String("corpus", "data/corpus.jsonl", "path to the JSONL corpus file")
	flag.Parse()

	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 2. Open the vector store and ensure the schema exists
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to DB: %v", err)
	}
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Panicf("Unable to enable pgvector extension: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.ProfileRecord{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Embedding Provider
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// 4. Parse the corpus
	records, err := service.ParseCorpus(*corpusPath, sysLogger)
	if err != nil {
		log.Panicf("Unable to read corpus %s: %v", *corpusPath, err)
	}
	log.Printf("[INFO] Parsed %d corpus records from %s", len(records), *corpusPath)

	// 5. Run the ingest pipeline
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	profileRepo := implementation.NewProfileRepository(gormDB)
	ingest := service.NewIngestService(pubSub, cfg.App.IngestTopic, embeddingProvider, profileRepo, sysLogger)

	summary, err := ingest.Run(context.Background(), records)
	if err != nil {
		log.Panicf("Ingest failed: %v", err)
	}

	log.Printf("[INFO] Ingest complete: %d stored, %d failed", summary.Stored, summary.Failed)
}

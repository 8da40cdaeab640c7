package main

import (
	"context"
	"log"

	"profile-chat-be/internal/bootstrap"
	"profile-chat-be/internal/config"
	"profile-chat-be/internal/server"
	"profile-chat-be/internal/tracer"
	"profile-chat-be/pkg/database"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Open the vector store (read-only from the server's point of view;
	// cmd/ingest owns writes)
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}

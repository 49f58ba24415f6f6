package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checklist_export/internal/config"
	"checklist_export/internal/handlers"
	"checklist_export/internal/repository"
	"checklist_export/internal/server"
	auth "checklist_export/internal/transport/auth"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)
	fmt.Println("✅ All connections successfully established!")

	if err := cfg.S3.EnsureBucket(setupCtx); err != nil {
		log.Fatalf("❌ Bucket setup failed: %v", err)
	}

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("❌ Connection check failed: %v", err)
	}
	fmt.Println("🟢 All connections OK")

	h := handlers.New(cfg.Postgres, cfg.Mongo, cfg.S3, cfg.CacheTTL)

	tokenRepo := repository.NewPersonalAccessTokenRepository(cfg.Postgres)
	srv := server.NewServer(cfg.Port, h, auth.TokenMiddleware(tokenRepo))

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/priyanshu/opportunity-board/internal/api"
	"github.com/priyanshu/opportunity-board/internal/auth"
	"github.com/priyanshu/opportunity-board/internal/catalog"
	"github.com/priyanshu/opportunity-board/internal/ingest"
	"github.com/priyanshu/opportunity-board/internal/source"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	ctx := context.Background()

	reg, err := source.LoadRegistry("internal/source/config/sources.yaml")
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}
	cfg, err := reg.ActiveSource()
	if err != nil {
		log.Fatalf("Source registry: %v", err)
	}

	var src source.Tabular
	var appender source.Appender
	sheetsSrc, err := source.NewSheetsSource(ctx, cfg)
	if err != nil {
		// No remote feed configured: run off the built-in dataset.
		log.Printf("Sheets source unavailable (%v); serving fallback dataset", err)
		src = source.Static{}
	} else {
		src = sheetsSrc
		if sheetsSrc.Writable() {
			appender = sheetsSrc
		}
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	cat := catalog.New(src, ingest.NewNormalizer(), timeout)

	// Warm the catalog in the background; queries report loading until the
	// first refresh lands.
	go cat.Refresh(ctx)

	srv := api.NewServer(cat, auth.NewService(), appender)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cine-agent/docs" // Swagger docs
	"cine-agent/internal/api"
	"cine-agent/internal/catalog"
	"cine-agent/internal/config"
	"cine-agent/internal/llm"
)

// @title CineAgent Movie Recommendation API
// @version 1.0
// @description Conversational movie recommendation agent combining LLM intent extraction with catalog retrieval and LLM-ranked results

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	cfg := config.LoadConfig()

	var store *catalog.Store
	var err error

	if cfg.DatabaseURL != "" {
		log.Println("Loading catalog from Postgres...")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		store, err = catalog.LoadFromPostgres(ctx, cfg.DatabaseURL)
		cancel()
	} else {
		log.Printf("Loading catalog from CSV: %s", cfg.CatalogCSV)
		store, err = catalog.LoadFromCSV(cfg.CatalogCSV)
	}
	if err != nil {
		log.Fatal("catalog load: ", err)
	}
	if store.Len() == 0 {
		log.Fatal("catalog is empty, nothing to recommend from")
	}

	provider := cfg.LLMProvider
	if (provider == "openai" || provider == "groq") && cfg.LLMAPIKey == "" {
		log.Printf("Warning: %s selected but no API key set; completion calls will fail and the agent will degrade", provider)
		provider = "none"
	}
	llmSvc := llm.NewService(provider, cfg.LLMAPIKey, cfg.LLMModel)

	apiSrv := api.NewAPI(store, llmSvc)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // two LLM round-trips per request on slow local models
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}

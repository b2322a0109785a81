package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"cine-agent/internal/agent"
	"cine-agent/internal/catalog"
	"cine-agent/internal/config"
	"cine-agent/internal/llm"
)

// One-shot runner: asks the agent a single question from the command line
// and prints the recommendation, no HTTP server involved.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ask \"Recommend a movie like World War Z for me\"")
		os.Exit(2)
	}
	question := strings.Join(os.Args[1:], " ")

	cfg := config.LoadConfig()

	var store *catalog.Store
	var err error
	if cfg.DatabaseURL != "" {
		store, err = catalog.LoadFromPostgres(context.Background(), cfg.DatabaseURL)
	} else {
		store, err = catalog.LoadFromCSV(cfg.CatalogCSV)
	}
	if err != nil {
		log.Fatal("catalog load: ", err)
	}

	llmSvc := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	orchestrator := agent.NewOrchestrator(store, agent.NewLLMAdapter(llmSvc))

	recommendation := orchestrator.Recommend(context.Background(), question)

	fmt.Println(recommendation)
}

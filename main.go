package main

import (
	"log"

	"github.com/joho/godotenv"

	"loansight/adapters/corpus"
	"loansight/app"
	"loansight/internal/config"
	"loansight/ui"
)

func main() {
	// Load environment variables from .env file (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	reader := corpus.NewReader(cfg.Data.CorpusFile)
	trainingCorpus, err := reader.Load()
	if err != nil {
		log.Fatalf("Corpus load failed: %v", err)
	}

	advisor, err := app.NewAdvisorService(trainingCorpus, cfg.Generator.Seed)
	if err != nil {
		log.Fatalf("Advisor bootstrap failed: %v", err)
	}
	log.Printf("[Main] model ready (training accuracy %.3f)", advisor.Model().TrainingAccuracy())

	httpApp := ui.NewApp(advisor)
	if err := httpApp.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatal("Server failed:", err)
	}
}

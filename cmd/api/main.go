package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/northflank-guides/go-with-postgres/internal/config"
	"github.com/northflank-guides/go-with-postgres/internal/database"
	"github.com/northflank-guides/go-with-postgres/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	dbManager, err := database.NewPostgresDBManager(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer dbManager.Close()

	if err := dbManager.CreateVisitorsTable(ctx); err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}

	router := server.SetupRoutes(server.NewVisitorService(dbManager))

	log.Printf("Server starting on port %s", cfg.APIPort)
	if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%s", cfg.APIPort), router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

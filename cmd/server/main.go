package main

import (
	"net/http"
	"os"

	"github.com/kampaw333/Atlas-Osiagniec/internal/api"
	"github.com/kampaw333/Atlas-Osiagniec/internal/config"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/logger"
	"github.com/kampaw333/Atlas-Osiagniec/internal/middleware"
)

func main() {
	// Charger la configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connexion à PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialiser les routes
	router := api.SetupRouter()

	// Wrapper le router avec le middleware CORS
	handler := middleware.CORSMiddleware(router)

	// Démarrer le serveur
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

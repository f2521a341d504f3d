package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/kampaw333/Atlas-Osiagniec/internal/handler"
	"github.com/kampaw333/Atlas-Osiagniec/internal/middleware"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - documentation de l'API
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{userId}/stats", handler.GetUserStats).Methods(http.MethodGet)

	// Catalogues de sommets (réconciliés si connecté)
	r.HandleFunc("/peaks/{catalog}", handler.GetCatalog).Methods(http.MethodGet)

	// Achievements
	authenticatedRoutes.HandleFunc("/achievements", handler.GetAchievements).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/achievements", handler.CreateAchievement).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/achievements/{id}", handler.GetAchievementById).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}

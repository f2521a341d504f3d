package handler

import (
	"net/http"

	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Atlas Osiągnięć API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signup", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users/{id}", "description": "Profil utilisateur"},
				{"method": "GET", "path": "/users/{userId}/stats", "description": "Compteurs du tableau de bord (korona_europy, korona_polski, kraje, zawody)"},
			},
			"peaks": []map[string]string{
				{"method": "GET", "path": "/peaks/{catalog}", "description": "Catalogue korona-europy ou korona-polski, réconcilié avec les achievements (params: filter, sortBy, order)"},
			},
			"achievements": []map[string]string{
				{"method": "GET", "path": "/achievements", "description": "Achievements de l'utilisateur connecté (param: category)"},
				{"method": "GET", "path": "/achievements/{id}", "description": "Un achievement par ID"},
				{"method": "POST", "path": "/achievements", "description": "Enregistrer un achievement (korona_europy, korona_polski, bieganie, zawody)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour Atlas Osiągnięć - suivi de sommets, courses et compétitions",
		},
	}

	utils.Success(w, routes)
}

package handler

import (
	"context"
	"net/http"

	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := database.DB.Ping(context.Background()); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "database unreachable: "+err.Error())
		return
	}
	utils.Message(w, "ok")
}

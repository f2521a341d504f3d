package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/scanner"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()
	row := database.DB.QueryRow(ctx,
		`SELECT id, username, COALESCE(full_name,'') AS full_name, email,
		        created_at, updated_at
		 FROM users WHERE id=$1`,
		id,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

package handler

import (
	"context"
	"net/http"
	"strings"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"

	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/middleware"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		utils.Error(w, http.StatusBadRequest, "username, email and a password of at least 8 characters are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	ctx := context.Background()
	var user model.UserProfile
	user.Username = req.Username
	user.FullName = req.FullName
	user.Email = req.Email

	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(username, full_name, email, password_hash, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NOW(), NOW())
		 RETURNING id, created_at, updated_at`,
		req.Username, req.FullName, req.Email, string(hashed),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user: "+err.Error())
		return
	}

	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, COALESCE(full_name,'') AS full_name, email,
		        created_at, updated_at, password_hash
		 FROM users WHERE email=$1`,
		req.Email,
	).Scan(&user.ID, &user.Username, &user.FullName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt, &hashedPassword)

	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(context.Background(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out")
}

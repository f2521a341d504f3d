package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
)

// SessionDuration durée de validité d'une session (7 jours)
const SessionDuration = 7 * 24 * time.Hour

// CreateSession crée une nouvelle session pour un utilisateur et retourne
// son token
func CreateSession(ctx context.Context, userID, ipAddress, userAgent string) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	_, err := database.DB.Exec(ctx,
		`INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at)
		 VALUES($1, $2, $3, $4, true, $5, $6)`,
		userID, token, ipAddress, userAgent, now, now.Add(SessionDuration),
	)
	if err != nil {
		return "", err
	}

	return token, nil
}

// InvalidateSession désactive une session active
func InvalidateSession(ctx context.Context, token string) error {
	res, err := database.DB.Exec(ctx,
		`UPDATE sessions SET is_active=false, expires_at=NOW()
		 WHERE token=$1 AND is_active=true`,
		token,
	)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return fmt.Errorf("session not found or already inactive")
	}

	return nil
}

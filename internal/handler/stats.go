package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
	"github.com/kampaw333/Atlas-Osiagniec/internal/summit"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

// GetUserStats calcule les quatre compteurs du tableau de bord. Chaque
// compteur vient de sa propre requête par catégorie : si l'une échoue elle
// est loggée et son compteur reste à 0, les trois autres sont servis quand
// même.
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	ctx := context.Background()
	var stats model.UserStats

	// Korona Europy : sommets européens distincts
	if refs, err := fetchAchievementColumn(ctx, userID, model.CategoryKoronaEuropy, "peak_europe_id"); err != nil {
		utils.LogError("stats: korona_europy query failed for user %s: %v", userID, err)
	} else {
		stats.KoronaEuropy = summit.DistinctNonEmpty(refs)
	}

	// Korona Polski : sommets polonais distincts
	if refs, err := fetchAchievementColumn(ctx, userID, model.CategoryKoronaPolski, "peak_poland_id"); err != nil {
		utils.LogError("stats: korona_polski query failed for user %s: %v", userID, err)
	} else {
		stats.KoronaPolski = summit.DistinctNonEmpty(refs)
	}

	// Kraje : pays distincts où l'utilisateur a couru
	if locations, err := fetchAchievementColumn(ctx, userID, model.CategoryBieganie, "location"); err != nil {
		utils.LogError("stats: bieganie query failed for user %s: %v", userID, err)
	} else {
		stats.Kraje = summit.DistinctNonEmpty(locations)
	}

	// Zawody : nombre brut de participations (pas de distinct)
	var zawody int
	err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM achievements WHERE user_id=$1 AND category=$2`,
		userID, model.CategoryZawody,
	).Scan(&zawody)
	if err != nil {
		utils.LogError("stats: zawody query failed for user %s: %v", userID, err)
	} else {
		stats.Zawody = zawody
	}

	utils.Success(w, stats)
}

// fetchAchievementColumn retourne les valeurs non nulles d'une colonne pour
// une catégorie donnée. La colonne vient de nos constantes, jamais de la
// requête entrante.
func fetchAchievementColumn(ctx context.Context, userID, category, column string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM achievements WHERE user_id=$1 AND category=$2 AND %s IS NOT NULL`,
		column, column,
	)

	rows, err := database.DB.Query(ctx, query, userID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

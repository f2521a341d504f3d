package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/middleware"
	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
	"github.com/kampaw333/Atlas-Osiagniec/internal/scanner"
	"github.com/kampaw333/Atlas-Osiagniec/internal/summit"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

// CreateAchievementRequest est le payload du formulaire d'ajout. Les champs
// utilisés dépendent de la catégorie.
type CreateAchievementRequest struct {
	Category   string   `json:"category"`
	PeakID     string   `json:"peakId,omitempty"`
	Date       string   `json:"date"`
	Notes      *string  `json:"notes,omitempty"`
	CustomName string   `json:"customName,omitempty"`
	Location   string   `json:"location,omitempty"`
	Country    string   `json:"country,omitempty"`
	City       string   `json:"city,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
	Time       *string  `json:"time,omitempty"`
	RaceType   *string  `json:"raceType,omitempty"`
	Place      *int     `json:"place,omitempty"`
}

// GetAchievements liste les achievements de l'utilisateur connecté,
// éventuellement restreints à une catégorie
func GetAchievements(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	category := r.URL.Query().Get("category")
	if category != "" && !model.ValidCategory(category) {
		utils.Error(w, http.StatusBadRequest, "unknown category: "+category)
		return
	}

	ctx := context.Background()
	query := `
		SELECT id, user_id, category, peak_europe_id, peak_poland_id,
		       name, custom_name, location, date, notes,
		       distance, time, race_type, place, created_at
		FROM achievements
		WHERE user_id=$1`
	args := []interface{}{user.ID}
	if category != "" {
		query += ` AND category=$2`
		args = append(args, category)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := database.DB.Query(ctx, query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query achievements: "+err.Error())
		return
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		a, err := scanner.ScanAchievement(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan achievement row: "+err.Error())
			return
		}
		achievements = append(achievements, *a)
	}

	utils.Success(w, achievements)
}

// GetAchievementById retourne un achievement de l'utilisateur connecté
func GetAchievementById(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()
	row := database.DB.QueryRow(ctx, `
		SELECT id, user_id, category, peak_europe_id, peak_poland_id,
		       name, custom_name, location, date, notes,
		       distance, time, race_type, place, created_at
		FROM achievements
		WHERE id=$1 AND user_id=$2`,
		id, user.ID,
	)

	achievement, err := scanner.ScanAchievement(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "achievement not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get achievement: "+err.Error())
		return
	}

	utils.Success(w, achievement)
}

// CreateAchievement enregistre un nouvel achievement. Pas de mise à jour
// optimiste côté client : le front recharge catalogue + stats après une
// écriture confirmée.
func CreateAchievement(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req CreateAchievementRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !model.ValidCategory(req.Category) {
		utils.Error(w, http.StatusBadRequest, "unknown category: "+req.Category)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	achievement := model.Achievement{
		UserID:   user.ID,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}

	ctx := context.Background()

	switch req.Category {
	case model.CategoryKoronaEuropy, model.CategoryKoronaPolski:
		if err := fillCrownAchievement(ctx, &achievement, req); err != nil {
			writeCrownError(w, err)
			return
		}
	case model.CategoryBieganie:
		if req.Country == "" {
			utils.Error(w, http.StatusBadRequest, "country is required for bieganie")
			return
		}
		location := req.Country
		if req.City != "" {
			location = fmt.Sprintf("%s, %s", req.City, req.Country)
		}
		achievement.Location = location
		achievement.Distance = req.Distance
		achievement.Time = req.Time
		if req.Distance != nil {
			customName := fmt.Sprintf("%gkm run", *req.Distance)
			achievement.CustomName = &customName
		}
	case model.CategoryZawody:
		if req.CustomName == "" {
			utils.Error(w, http.StatusBadRequest, "customName is required for zawody")
			return
		}
		achievement.CustomName = &req.CustomName
		achievement.Location = req.Location
		achievement.RaceType = req.RaceType
		achievement.Time = req.Time
		achievement.Place = req.Place
	}

	err = database.DB.QueryRow(ctx, `
		INSERT INTO achievements(user_id, category, peak_europe_id, peak_poland_id,
		                        name, custom_name, location, date, notes,
		                        distance, time, race_type, place, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, created_at`,
		achievement.UserID, achievement.Category,
		achievement.PeakEuropeID, achievement.PeakPolandID,
		nullableString(achievement.Name), achievement.CustomName,
		nullableString(achievement.Location), achievement.Date, achievement.Notes,
		achievement.Distance, achievement.Time, achievement.RaceType, achievement.Place,
	).Scan(&achievement.ID, &achievement.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save achievement: "+err.Error())
		return
	}

	utils.Success(w, achievement)
}

var errPeakAlreadyLogged = fmt.Errorf("peak already logged")

// fillCrownAchievement résout la référence de sommet contre son catalogue,
// dénormalise nom et région, et refuse un doublon sur un sommet déjà gravi
// (l'unicité est garantie à l'écriture, pas laissée au premier-arrivé de la
// réconciliation)
func fillCrownAchievement(ctx context.Context, achievement *model.Achievement, req CreateAchievementRequest) error {
	if req.PeakID == "" {
		return fmt.Errorf("peakId is required for %s", req.Category)
	}

	catalog := summit.CatalogEurope
	if req.Category == model.CategoryKoronaPolski {
		catalog = summit.CatalogPoland
	}

	var name, region string
	query := fmt.Sprintf(`SELECT name, COALESCE(%s,'') FROM %s WHERE id=$1`,
		catalog.RegionColumn(), catalog.TableName())
	err := database.DB.QueryRow(ctx, query, req.PeakID).Scan(&name, &region)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("peak %s not found in %s", req.PeakID, catalog.TableName())
		}
		return err
	}

	refColumn := "peak_europe_id"
	if catalog == summit.CatalogPoland {
		refColumn = "peak_poland_id"
	}

	var exists bool
	dupQuery := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM achievements WHERE user_id=$1 AND category=$2 AND %s=$3)`,
		refColumn,
	)
	err = database.DB.QueryRow(ctx, dupQuery, achievement.UserID, achievement.Category, req.PeakID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", errPeakAlreadyLogged, name)
	}

	achievement.Name = name
	achievement.Location = region
	peakID := req.PeakID
	if catalog == summit.CatalogEurope {
		achievement.PeakEuropeID = &peakID
	} else {
		achievement.PeakPolandID = &peakID
	}

	return nil
}

func writeCrownError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, errPeakAlreadyLogged):
		utils.Error(w, http.StatusConflict, msg)
	case strings.Contains(msg, "not found"), strings.Contains(msg, "required"):
		utils.Error(w, http.StatusBadRequest, msg)
	default:
		utils.Error(w, http.StatusInternalServerError, "could not validate peak: "+msg)
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kampaw333/Atlas-Osiagniec/internal/database"
	"github.com/kampaw333/Atlas-Osiagniec/internal/middleware"
	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
	"github.com/kampaw333/Atlas-Osiagniec/internal/scanner"
	"github.com/kampaw333/Atlas-Osiagniec/internal/summit"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

// GetCatalog sert un catalogue de sommets réconcilié avec les achievements
// de l'utilisateur connecté. Sans token valide la liste est servie avec tous
// les sommets marqués restants. Params: filter (all/completed/remaining),
// sortBy (region/height), order (asc/desc).
func GetCatalog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	catalog, err := summit.ParseCatalog(vars["catalog"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	ctx := context.Background()

	peaks, err := fetchCatalogPeaks(ctx, catalog)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch catalog: "+err.Error())
		return
	}

	// Refuser un jeu de données croisé plutôt que d'afficher l'autre
	// catalogue à la place du bon
	if err := summit.ValidateCatalog(catalog, peaks); err != nil {
		utils.Error(w, http.StatusInternalServerError, "catalog integrity check failed: "+err.Error())
		return
	}

	// La réconciliation n'a lieu qu'une fois le catalogue ET les
	// achievements chargés, jamais sur des données partielles
	var reconciled []model.ReconciledPeak
	user, authErr := middleware.GetUserFromContext(r)
	if authErr != nil {
		// Chemin anonyme explicite : tout est restant
		reconciled = summit.ReconcileAnonymous(peaks)
	} else {
		achievements, err := fetchUserAchievements(ctx, user.ID, catalog.AchievementCategory())
		if err != nil {
			// Dégradation : le catalogue est servi sans état de complétion
			utils.LogError("could not fetch achievements for user %s: %v", user.ID, err)
			reconciled = summit.ReconcileAnonymous(peaks)
		} else {
			reconciled = summit.Reconcile(catalog, peaks, achievements)
		}
	}

	query := r.URL.Query()
	filter := summit.ParseFilter(query.Get("filter"))
	view := summit.ParseView(query.Get("sortBy"), query.Get("order"))
	visible := summit.ApplyView(reconciled, filter, view)

	completed := summit.CompletedCount(reconciled)
	response := map[string]interface{}{
		"catalog":        catalog,
		"peaks":          visible,
		"filter":         filter,
		"view":           view,
		"totalCount":     len(reconciled),
		"completedCount": completed,
		"remainingCount": len(reconciled) - completed,
		"progress":       summit.Progress(completed, len(reconciled)),
	}
	if highest, ok := summit.HighestCompleted(reconciled); ok {
		response["highestCompleted"] = highest
	}

	utils.Success(w, response)
}

// fetchCatalogPeaks charge un catalogue complet, trié par région puis
// hauteur décroissante (l'ordre d'affichage des pages catalogue)
func fetchCatalogPeaks(ctx context.Context, catalog summit.Catalog) ([]model.Peak, error) {
	query := fmt.Sprintf(
		`SELECT id, name, %s, height_m, latitude, longitude
		 FROM %s
		 ORDER BY %s, height_m DESC`,
		catalog.RegionColumn(), catalog.TableName(), catalog.RegionColumn(),
	)

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peaks []model.Peak
	for rows.Next() {
		var p *model.Peak
		if catalog == summit.CatalogEurope {
			p, err = scanner.ScanEuropePeak(rows)
		} else {
			p, err = scanner.ScanPolandPeak(rows)
		}
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, *p)
	}

	return peaks, rows.Err()
}

// fetchUserAchievements charge les achievements d'un utilisateur pour une
// catégorie donnée
func fetchUserAchievements(ctx context.Context, userID, category string) ([]model.Achievement, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, category, peak_europe_id, peak_poland_id,
		       name, custom_name, location, date, notes,
		       distance, time, race_type, place, created_at
		FROM achievements
		WHERE user_id=$1 AND category=$2`,
		userID, category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []model.Achievement
	for rows.Next() {
		a, err := scanner.ScanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}

	return achievements, rows.Err()
}

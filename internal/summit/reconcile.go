package summit

import (
	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

// Reconcile joint un catalogue de sommets aux achievements d'un utilisateur.
// L'ordre et la longueur du catalogue sont préservés : chaque sommet produit
// exactement une entrée, complétée ou non. Le premier achievement dont la
// référence correspond à l'id du sommet gagne ; un record sans référence
// (ou avec une référence qui ne correspond à rien) ne matche simplement pas.
// Fonction pure, aucun accès base.
func Reconcile(catalog Catalog, peaks []model.Peak, achievements []model.Achievement) []model.ReconciledPeak {
	if len(achievements) == 0 {
		return ReconcileAnonymous(peaks)
	}

	out := make([]model.ReconciledPeak, 0, len(peaks))
	for _, peak := range peaks {
		entry := model.ReconciledPeak{Peak: peak}
		for _, a := range achievements {
			if a.Category != catalog.AchievementCategory() {
				continue
			}
			ref := a.PeakReference()
			if ref == nil || *ref == "" || *ref != peak.ID {
				continue
			}
			entry.IsCompleted = true
			date := a.Date
			entry.CompletionDate = &date
			break
		}
		out = append(out, entry)
	}
	return out
}

// ReconcileAnonymous est le chemin explicite "aucun achievement" (utilisateur
// non connecté ou fetch des achievements en échec) : tous les sommets sont
// marqués restants, sans date
func ReconcileAnonymous(peaks []model.Peak) []model.ReconciledPeak {
	out := make([]model.ReconciledPeak, 0, len(peaks))
	for _, peak := range peaks {
		out = append(out, model.ReconciledPeak{Peak: peak})
	}
	return out
}

// CompletedCount compte les sommets complétés d'une liste réconciliée
func CompletedCount(peaks []model.ReconciledPeak) int {
	count := 0
	for _, p := range peaks {
		if p.IsCompleted {
			count++
		}
	}
	return count
}

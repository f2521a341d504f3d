package summit

import (
	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

// HighestCompleted retourne le plus haut sommet complété de la liste, ou
// false si rien n'est complété. À hauteur égale c'est la première entrée
// dans l'ordre du catalogue qui gagne (comparaison stricte, déterministe).
func HighestCompleted(peaks []model.ReconciledPeak) (model.ReconciledPeak, bool) {
	var best model.ReconciledPeak
	found := false
	for _, p := range peaks {
		if !p.IsCompleted {
			continue
		}
		if !found || p.HeightM > best.HeightM {
			best = p
			found = true
		}
	}
	return best, found
}

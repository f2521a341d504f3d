package summit

import (
	"math"
)

// DistinctNonEmpty compte les valeurs distinctes d'une liste en ignorant
// les chaînes vides. Comparaison par égalité stricte de la valeur : une
// référence périmée mais non vide compte quand même pour une valeur.
func DistinctNonEmpty(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Progress retourne le pourcentage de complétion arrondi (0 si le catalogue
// est vide)
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

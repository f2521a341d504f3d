package model

import (
	"math"
	"time"
)

// Peak représente un sommet d'un des deux catalogues de référence.
// Country est renseigné pour la Korona Europy, MountainRange pour la
// Korona Polski (jamais les deux).
type Peak struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country,omitempty"`
	MountainRange string   `json:"mountainRange,omitempty"`
	HeightM       int      `json:"heightM"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// Region retourne le pays ou le massif selon le catalogue d'origine
func (p Peak) Region() string {
	if p.Country != "" {
		return p.Country
	}
	return p.MountainRange
}

// HasCoordinates vérifie que les coordonnées sont présentes et exploitables
// (certaines lignes des catalogues n'ont pas de latitude/longitude, ou NaN)
func (p Peak) HasCoordinates() bool {
	if p.Latitude == nil || p.Longitude == nil {
		return false
	}
	return !math.IsNaN(*p.Latitude) && !math.IsNaN(*p.Longitude)
}

// ReconciledPeak est un sommet annoté avec l'état de complétion de
// l'utilisateur courant. Jamais persisté, recalculé à chaque requête.
type ReconciledPeak struct {
	Peak
	IsCompleted    bool       `json:"isCompleted"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
}

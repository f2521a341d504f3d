package model

import (
	"time"
)

// Catégories d'osiągnięcia (mêmes valeurs que la colonne category en base)
const (
	CategoryKoronaEuropy = "korona_europy"
	CategoryKoronaPolski = "korona_polski"
	CategoryBieganie     = "bieganie"
	CategoryZawody       = "zawody"
)

// ValidCategory vérifie qu'une catégorie fait partie de l'énumération
func ValidCategory(category string) bool {
	switch category {
	case CategoryKoronaEuropy, CategoryKoronaPolski, CategoryBieganie, CategoryZawody:
		return true
	}
	return false
}

// Achievement est un fait enregistré par l'utilisateur. Les champs optionnels
// dépendent de la catégorie : PeakEuropeID/PeakPolandID pour les couronnes,
// Distance/Time pour la course, RaceType/Place pour les compétitions.
type Achievement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Category     string    `json:"category"`
	PeakEuropeID *string   `json:"peakEuropeId,omitempty"`
	PeakPolandID *string   `json:"peakPolandId,omitempty"`
	Name         string    `json:"name,omitempty"`
	CustomName   *string   `json:"customName,omitempty"`
	Location     string    `json:"location,omitempty"`
	Date         time.Time `json:"date"`
	Notes        *string   `json:"notes,omitempty"`
	Distance     *float64  `json:"distance,omitempty"`
	Time         *string   `json:"time,omitempty"`
	RaceType     *string   `json:"raceType,omitempty"`
	Place        *int      `json:"place,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PeakReference retourne l'identifiant de sommet référencé par le record,
// ou nil si le record n'en référence aucun
func (a Achievement) PeakReference() *string {
	switch a.Category {
	case CategoryKoronaEuropy:
		return a.PeakEuropeID
	case CategoryKoronaPolski:
		return a.PeakPolandID
	}
	return nil
}

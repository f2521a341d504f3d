package model

// UserStats regroupe les quatre compteurs du tableau de bord.
// Chaque compteur est calculé indépendamment : un échec sur l'une des
// requêtes laisse le compteur concerné à 0 sans bloquer les autres.
type UserStats struct {
	KoronaEuropy int `json:"korona_europy"`
	KoronaPolski int `json:"korona_polski"`
	Kraje        int `json:"kraje"`
	Zawody       int `json:"zawody"`
}

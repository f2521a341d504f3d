package summit

import (
	"fmt"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

// Catalog identifie l'un des deux catalogues de sommets
type Catalog string

const (
	CatalogEurope Catalog = "korona-europy"
	CatalogPoland Catalog = "korona-polski"
)

// ParseCatalog convertit le segment d'URL en catalogue connu
func ParseCatalog(s string) (Catalog, error) {
	switch Catalog(s) {
	case CatalogEurope:
		return CatalogEurope, nil
	case CatalogPoland:
		return CatalogPoland, nil
	}
	return "", fmt.Errorf("unknown catalog %q", s)
}

// AchievementCategory retourne la catégorie d'achievement liée au catalogue
func (c Catalog) AchievementCategory() string {
	if c == CatalogEurope {
		return model.CategoryKoronaEuropy
	}
	return model.CategoryKoronaPolski
}

// TableName retourne la table de référence du catalogue
func (c Catalog) TableName() string {
	if c == CatalogEurope {
		return "peaks_europe"
	}
	return "peaks_poland"
}

// RegionColumn retourne la colonne discriminante du catalogue
// (country pour l'Europe, mountain_range pour la Pologne)
func (c Catalog) RegionColumn() string {
	if c == CatalogEurope {
		return "country"
	}
	return "mountain_range"
}

// ValidateCatalog vérifie que les lignes retournées appartiennent bien au
// catalogue demandé : chaque sommet européen doit porter un pays, chaque
// sommet polonais un massif (et pas de pays). Un jeu de données croisé est
// rejeté en bloc plutôt que servi à la place du bon catalogue.
func ValidateCatalog(c Catalog, peaks []model.Peak) error {
	for _, p := range peaks {
		switch c {
		case CatalogEurope:
			if p.Country == "" {
				return fmt.Errorf("peak %q has no country: not a %s row", p.Name, CatalogEurope)
			}
		case CatalogPoland:
			if p.MountainRange == "" || p.Country != "" {
				return fmt.Errorf("peak %q is not a %s row", p.Name, CatalogPoland)
			}
		default:
			return fmt.Errorf("unknown catalog %q", c)
		}
	}
	return nil
}

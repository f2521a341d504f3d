package summit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog("korona-europy")
	require.NoError(t, err)
	assert.Equal(t, CatalogEurope, c)

	c, err = ParseCatalog("korona-polski")
	require.NoError(t, err)
	assert.Equal(t, CatalogPoland, c)

	_, err = ParseCatalog("korona-azji")
	assert.Error(t, err)
}

func TestCatalogMapping(t *testing.T) {
	assert.Equal(t, model.CategoryKoronaEuropy, CatalogEurope.AchievementCategory())
	assert.Equal(t, model.CategoryKoronaPolski, CatalogPoland.AchievementCategory())
	assert.Equal(t, "peaks_europe", CatalogEurope.TableName())
	assert.Equal(t, "peaks_poland", CatalogPoland.TableName())
	assert.Equal(t, "country", CatalogEurope.RegionColumn())
	assert.Equal(t, "mountain_range", CatalogPoland.RegionColumn())
}

func TestValidateCatalogAcceptsMatchingRows(t *testing.T) {
	europe := []model.Peak{
		{ID: "1", Name: "Mont Blanc", Country: "Francja", HeightM: 4810},
		{ID: "2", Name: "Gerlach", Country: "Słowacja", HeightM: 2655},
	}
	assert.NoError(t, ValidateCatalog(CatalogEurope, europe))

	poland := []model.Peak{
		{ID: "1", Name: "Rysy", MountainRange: "Tatry", HeightM: 2503},
	}
	assert.NoError(t, ValidateCatalog(CatalogPoland, poland))
}

func TestValidateCatalogEmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateCatalog(CatalogEurope, nil))
	assert.NoError(t, ValidateCatalog(CatalogPoland, nil))
}

// Des lignes polonaises servies pour une requête européenne (ou l'inverse)
// sont rejetées en bloc au lieu d'être affichées à la place du bon catalogue
func TestValidateCatalogRejectsCrossContamination(t *testing.T) {
	polishRows := []model.Peak{
		{ID: "1", Name: "Rysy", MountainRange: "Tatry", HeightM: 2503},
	}
	assert.Error(t, ValidateCatalog(CatalogEurope, polishRows))

	europeanRows := []model.Peak{
		{ID: "1", Name: "Mont Blanc", Country: "Francja", HeightM: 4810},
	}
	assert.Error(t, ValidateCatalog(CatalogPoland, europeanRows))
}

func TestValidateCatalogRejectsPartialContamination(t *testing.T) {
	mixed := []model.Peak{
		{ID: "1", Name: "Mont Blanc", Country: "Francja", HeightM: 4810},
		{ID: "2", Name: "Śnieżka", MountainRange: "Karkonosze", HeightM: 1603},
	}
	assert.Error(t, ValidateCatalog(CatalogEurope, mixed))
}

package summit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func polishCatalog() []model.Peak {
	return []model.Peak{
		{ID: "1", Name: "Rysy", MountainRange: "Tatry", HeightM: 2503},
		{ID: "2", Name: "Śnieżka", MountainRange: "Karkonosze", HeightM: 1603},
		{ID: "3", Name: "Babia Góra", MountainRange: "Beskid Żywiecki", HeightM: 1725},
	}
}

func TestReconcilePreservesCatalogOrder(t *testing.T) {
	peaks := polishCatalog()
	achievements := []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("3"), Date: time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a2", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("1"), Date: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)},
	}

	out := Reconcile(CatalogPoland, peaks, achievements)

	require.Len(t, out, len(peaks))
	for i, p := range peaks {
		assert.Equal(t, p.ID, out[i].ID)
		assert.Equal(t, p.Name, out[i].Name)
	}
}

func TestReconcileMatchCorrectness(t *testing.T) {
	peaks := polishCatalog()
	completionDate := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	achievements := []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("1"), Date: completionDate},
	}

	out := Reconcile(CatalogPoland, peaks, achievements)

	require.Len(t, out, 3)
	assert.True(t, out[0].IsCompleted)
	require.NotNil(t, out[0].CompletionDate)
	assert.Equal(t, completionDate, *out[0].CompletionDate)
	assert.False(t, out[1].IsCompleted)
	assert.Nil(t, out[1].CompletionDate)
	assert.False(t, out[2].IsCompleted)
}

func TestReconcileNoAchievements(t *testing.T) {
	out := Reconcile(CatalogPoland, polishCatalog(), nil)

	require.Len(t, out, 3)
	for _, p := range out {
		assert.False(t, p.IsCompleted)
		assert.Nil(t, p.CompletionDate)
	}
}

func TestReconcileEmptyCatalog(t *testing.T) {
	out := Reconcile(CatalogPoland, nil, []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("1")},
	})
	assert.Empty(t, out)
}

func TestReconcileIgnoresMissingOrStaleReferences(t *testing.T) {
	peaks := polishCatalog()
	achievements := []model.Achievement{
		// Pas de référence du tout
		{ID: "a1", Category: model.CategoryKoronaPolski},
		// Référence vers un sommet qui n'existe pas dans le catalogue
		{ID: "a2", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("does-not-exist")},
		// Référence vide
		{ID: "a3", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("")},
		// Mauvaise catégorie : référence européenne sur un catalogue polonais
		{ID: "a4", Category: model.CategoryKoronaEuropy, PeakEuropeID: strPtr("1")},
	}

	out := Reconcile(CatalogPoland, peaks, achievements)

	require.Len(t, out, 3)
	for _, p := range out {
		assert.False(t, p.IsCompleted, "peak %s should not be completed", p.Name)
	}
}

func TestReconcileFirstMatchWins(t *testing.T) {
	peaks := polishCatalog()
	first := time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC)
	second := time.Date(2023, 9, 12, 0, 0, 0, 0, time.UTC)
	achievements := []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("2"), Date: first},
		{ID: "a2", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("2"), Date: second},
	}

	out := Reconcile(CatalogPoland, peaks, achievements)

	require.True(t, out[1].IsCompleted)
	require.NotNil(t, out[1].CompletionDate)
	assert.Equal(t, first, *out[1].CompletionDate)
}

func TestReconcileAnonymous(t *testing.T) {
	out := ReconcileAnonymous(polishCatalog())

	require.Len(t, out, 3)
	for _, p := range out {
		assert.False(t, p.IsCompleted)
		assert.Nil(t, p.CompletionDate)
	}
}

func TestCompletedCount(t *testing.T) {
	out := Reconcile(CatalogPoland, polishCatalog(), []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("1"), Date: time.Now()},
		{ID: "a2", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("3"), Date: time.Now()},
	})

	assert.Equal(t, 2, CompletedCount(out))
}

// Scénario de bout en bout : réconciliation, filtre, tri, plus haut sommet
func TestReconcileFilterSortScenario(t *testing.T) {
	peaks := []model.Peak{
		{ID: "1", Name: "Rysy", MountainRange: "Tatry", HeightM: 2503},
		{ID: "2", Name: "Śnieżka", MountainRange: "Karkonosze", HeightM: 1603},
	}
	completionDate := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	achievements := []model.Achievement{
		{ID: "a1", Category: model.CategoryKoronaPolski, PeakPolandID: strPtr("1"), Date: completionDate},
	}

	reconciled := Reconcile(CatalogPoland, peaks, achievements)
	require.Len(t, reconciled, 2)
	assert.True(t, reconciled[0].IsCompleted)
	require.NotNil(t, reconciled[0].CompletionDate)
	assert.Equal(t, completionDate, *reconciled[0].CompletionDate)
	assert.False(t, reconciled[1].IsCompleted)
	assert.Nil(t, reconciled[1].CompletionDate)

	completed := ApplyView(reconciled, FilterCompleted, DefaultView())
	require.Len(t, completed, 1)
	assert.Equal(t, "1", completed[0].ID)

	byHeightDesc := ApplyView(reconciled, FilterAll, ViewState{SortBy: SortByHeight, Order: OrderDesc})
	require.Len(t, byHeightDesc, 2)
	assert.Equal(t, "1", byHeightDesc[0].ID)
	assert.Equal(t, "2", byHeightDesc[1].ID)

	highest, ok := HighestCompleted(reconciled)
	require.True(t, ok)
	assert.Equal(t, "1", highest.ID)
}

package summit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

func TestHighestCompleted(t *testing.T) {
	peaks := []model.ReconciledPeak{
		{Peak: model.Peak{ID: "1", Name: "Śnieżka", HeightM: 1603}, IsCompleted: true},
		{Peak: model.Peak{ID: "2", Name: "Rysy", HeightM: 2503}, IsCompleted: true},
		{Peak: model.Peak{ID: "3", Name: "Babia Góra", HeightM: 1725}, IsCompleted: false},
	}

	highest, ok := HighestCompleted(peaks)

	require.True(t, ok)
	assert.Equal(t, "2", highest.ID)
}

func TestHighestCompletedNoneCompleted(t *testing.T) {
	peaks := []model.ReconciledPeak{
		{Peak: model.Peak{ID: "1", Name: "Rysy", HeightM: 2503}},
	}

	_, ok := HighestCompleted(peaks)
	assert.False(t, ok)

	_, ok = HighestCompleted(nil)
	assert.False(t, ok)
}

// À hauteur égale la première entrée dans l'ordre du catalogue gagne
func TestHighestCompletedTieBreak(t *testing.T) {
	peaks := []model.ReconciledPeak{
		{Peak: model.Peak{ID: "first", Name: "Pierwszy", HeightM: 2503}, IsCompleted: true},
		{Peak: model.Peak{ID: "second", Name: "Drugi", HeightM: 2503}, IsCompleted: true},
	}

	highest, ok := HighestCompleted(peaks)

	require.True(t, ok)
	assert.Equal(t, "first", highest.ID)
}

// Un sommet non complété plus haut que tous les complétés ne gagne pas
func TestHighestCompletedSkipsRemaining(t *testing.T) {
	peaks := []model.ReconciledPeak{
		{Peak: model.Peak{ID: "1", Name: "Mont Blanc", HeightM: 4810}, IsCompleted: false},
		{Peak: model.Peak{ID: "2", Name: "Śnieżka", HeightM: 1603}, IsCompleted: true},
	}

	highest, ok := HighestCompleted(peaks)

	require.True(t, ok)
	assert.Equal(t, "2", highest.ID)
}

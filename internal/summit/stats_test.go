package summit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{"empty", nil, 0},
		{"duplicates collapse", []string{"A", "A", "B"}, 2},
		{"blank values ignored", []string{"", "A", "", "B", "A"}, 2},
		{"only blanks", []string{"", "", ""}, 0},
		{"stale reference still counts", []string{"deleted-peak-id", "deleted-peak-id"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistinctNonEmpty(tt.values))
		})
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(0, 28))
	assert.Equal(t, 100, Progress(28, 28))
	assert.Equal(t, 50, Progress(23, 46))
	// 5/28 = 17.86 → arrondi à 18
	assert.Equal(t, 18, Progress(5, 28))
	// Catalogue vide : pas de division par zéro
	assert.Equal(t, 0, Progress(0, 0))
	assert.Equal(t, 0, Progress(3, 0))
}

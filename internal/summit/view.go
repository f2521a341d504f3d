package summit

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
)

// Filter restreint la liste réconciliée à un sous-ensemble
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterRemaining Filter = "remaining"
)

// ParseFilter lit le paramètre de requête, "all" par défaut
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterCompleted:
		return FilterCompleted
	case FilterRemaining:
		return FilterRemaining
	}
	return FilterAll
}

// SortKey est la colonne de tri
type SortKey string

const (
	SortByRegion SortKey = "region"
	SortByHeight SortKey = "height"
)

// Order est la direction de tri
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ViewState est l'état de tri courant, passé en valeur explicite plutôt
// que tenu en état ambiant (sérialisable, testable sans UI)
type ViewState struct {
	SortBy SortKey `json:"sortBy"`
	Order  Order   `json:"order"`
}

// DefaultView correspond à l'affichage initial des pages catalogue
func DefaultView() ViewState {
	return ViewState{SortBy: SortByRegion, Order: OrderAsc}
}

// ParseView lit sortBy/order depuis les paramètres de requête
func ParseView(sortBy, order string) ViewState {
	view := DefaultView()
	if SortKey(sortBy) == SortByHeight {
		view.SortBy = SortByHeight
	}
	if Order(order) == OrderDesc {
		view.Order = OrderDesc
	}
	return view
}

// Toggle applique la transition de tri : re-cliquer la même colonne inverse
// la direction, une nouvelle colonne repart en ascendant
func (v ViewState) Toggle(key SortKey) ViewState {
	if v.SortBy == key {
		if v.Order == OrderAsc {
			return ViewState{SortBy: key, Order: OrderDesc}
		}
		return ViewState{SortBy: key, Order: OrderAsc}
	}
	return ViewState{SortBy: key, Order: OrderAsc}
}

// ApplyView filtre puis trie une liste réconciliée. Le tri est stable : les
// entrées à clé égale gardent leur ordre catalogue. Les régions sont
// comparées avec la collation polonaise (Ł après L, pas après Z), comme
// l'affichage ; une région absente compare comme la chaîne vide.
func ApplyView(peaks []model.ReconciledPeak, filter Filter, view ViewState) []model.ReconciledPeak {
	out := make([]model.ReconciledPeak, 0, len(peaks))
	for _, p := range peaks {
		switch filter {
		case FilterCompleted:
			if !p.IsCompleted {
				continue
			}
		case FilterRemaining:
			if p.IsCompleted {
				continue
			}
		}
		out = append(out, p)
	}

	// Le collator n'est pas sûr en concurrence, un par appel
	col := collate.New(language.Polish)

	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch view.SortBy {
		case SortByHeight:
			cmp = out[i].HeightM - out[j].HeightM
		default:
			cmp = col.CompareString(out[i].Region(), out[j].Region())
		}
		if view.Order == OrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

package client

import (
	"sort"
	"strings"

	"github.com/odolbodol/adboard/internal/domain"
)

// Filter keeps ads whose item name or location contains term,
// case-insensitively. A blank term matches everything.
func Filter(ads []domain.Ad, term string) []domain.Ad {
	term = strings.ToLower(term)

	matched := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if term == "" ||
			strings.Contains(strings.ToLower(ad.ItemName), term) ||
			strings.Contains(strings.ToLower(ad.Location), term) {
			matched = append(matched, ad)
		}
	}

	return matched
}

// Sort orders ads for rendering: premium first, then newest first by
// id. The input is left untouched. Ids are unique, so the order is
// total and re-sorting a sorted list is a no-op.
func Sort(ads []domain.Ad) []domain.Ad {
	sorted := make([]domain.Ad, len(ads))
	copy(sorted, ads)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsPremium != sorted[j].IsPremium {
			return sorted[i].IsPremium
		}

		return sorted[i].ID > sorted[j].ID
	})

	return sorted
}

package engine

import (
	"math"

	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
)

// FirstItem picks the session opener: the item whose difficulty is
// numerically closest to zero, i.e. matched to population-average ability.
// Ties resolve to the earlier item in pool order, so the pick is
// deterministic. Returns nil only for an empty pool.
func FirstItem(pool []itembank.Item) *itembank.Item {
	var best *itembank.Item
	bestDist := math.Inf(1)

	for i := range pool {
		dist := math.Abs(pool[i].Scale())
		if dist < bestDist {
			best = &pool[i]
			bestDist = dist
		}
	}
	return best
}

// NextItem picks the unused item carrying maximum information at the
// current ability estimate. Ties resolve to pool order. Returns nil when
// every item has been used — the normal end of the adaptive pass, not an
// error.
func NextItem(pool []itembank.Item, used map[string]bool, theta float64) *itembank.Item {
	var best *itembank.Item
	bestInfo := math.Inf(-1)

	for i := range pool {
		if used[pool[i].ID] {
			continue
		}
		info := irt.Information(theta, pool[i].Scale())
		if best == nil || info > bestInfo {
			best = &pool[i]
			bestInfo = info
		}
	}
	return best
}

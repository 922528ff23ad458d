package store

import (
	"sort"
	"time"
)

// newestFirst orders items by descending time. Equal times keep insertion order.
func newestFirst[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}

// Package catalog_cache holds the per-session catalog snapshot the storefront
// pages query against. Reads are frequent (every filter change re-runs the
// query engine), writes are rare (TTL expiry or an admin mutation).
package catalog_cache

import (
	"sync"
	"time"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

const TTL = 5 * time.Minute

type entry struct {
	products   []models.Product
	generation uint64
	fetchedAt  time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
	gen   uint64
)

// Get returns the cached catalog if it is still fresh.
func Get() ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.products, true
	}
	return nil, false
}

// Generation returns the current invalidation generation. Callers fetching a
// fresh catalog take the generation first and pass it to Set, so a slow stale
// fetch cannot overwrite a snapshot invalidated while it was in flight.
func Generation() uint64 {
	mu.RLock()
	defer mu.RUnlock()
	return gen
}

// Set stores a catalog snapshot fetched at generation g. Stale writers lose.
func Set(products []models.Product, g uint64) {
	mu.Lock()
	defer mu.Unlock()
	if g != gen {
		return
	}
	cache = &entry{products: products, generation: g, fetchedAt: time.Now()}
}

// Invalidate drops the snapshot (call on any product create/update/delete).
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	cache = nil
	gen++
}

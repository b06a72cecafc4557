package service

import (
	"context"
	"encoding/json"
	"time"

	"tdr-menu-api/internal/domain"
	"tdr-menu-api/internal/storage"
)

const statsCacheKey = "stats:catalog"

// StatsService computes the catalog summary on demand, with an optional
// redis-backed response cache in front of the computation.
type StatsService struct {
	store StoreInterface
	cache *storage.ResponseCache
	ctx   context.Context
}

func NewStatsService(store StoreInterface, cache *storage.ResponseCache) *StatsService {
	return &StatsService{
		store: store,
		cache: cache,
		ctx:   context.Background(),
	}
}

func (s *StatsService) Stats() domain.Stats {
	if s.cache != nil {
		if raw, ok := s.cache.Get(s.ctx, statsCacheKey); ok {
			var cached domain.Stats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	menus := s.store.Load(false)
	stats := domain.Stats{
		TotalMenus:       len(menus),
		AvailableMenus:   len(FilterAvailable(menus, time.Now())),
		TotalTags:        len(s.store.AllTags()),
		TotalCategories:  len(s.store.AllCategories()),
		TotalRestaurants: len(s.store.AllRestaurants()),
	}

	// Price stats cover priced items only; all three fields appear together
	// or not at all.
	var sum, count int
	var minPrice, maxPrice int
	for _, m := range menus {
		amount := m.Price.Amount
		if amount <= 0 {
			continue
		}
		if count == 0 || amount < minPrice {
			minPrice = amount
		}
		if count == 0 || amount > maxPrice {
			maxPrice = amount
		}
		sum += amount
		count++
	}
	if count > 0 {
		avg := sum / count
		stats.MinPrice = &minPrice
		stats.MaxPrice = &maxPrice
		stats.AvgPrice = &avg
	}

	// ISO 8601 strings sort lexicographically in chronological order.
	for _, m := range menus {
		if m.ScrapedAt > stats.LastUpdated {
			stats.LastUpdated = m.ScrapedAt
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			_ = s.cache.Set(s.ctx, statsCacheKey, payload)
		}
	}

	return stats
}

package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"tdr-menu-api/internal/domain"
	"tdr-menu-api/internal/storage"
)

// CatalogService serves the directory views derived from the snapshot:
// restaurants, tags, grouped tags and category counts.
type CatalogService struct {
	store StoreInterface
	cache *storage.ResponseCache
	ctx   context.Context
}

func NewCatalogService(store StoreInterface, cache *storage.ResponseCache) *CatalogService {
	return &CatalogService{
		store: store,
		cache: cache,
		ctx:   context.Background(),
	}
}

// Restaurants returns the deduplicated directory, optionally filtered by
// park, sorted by (park, area, name).
func (s *CatalogService) Restaurants(park string) ([]domain.Restaurant, error) {
	if park != "" && !domain.Park(park).Valid() {
		return nil, invalidParam("unknown park: %s", park)
	}

	restaurants := s.store.AllRestaurants()
	if park != "" {
		want := domain.Park(park)
		filtered := make([]domain.Restaurant, 0, len(restaurants))
		for _, r := range restaurants {
			if r.Park == want {
				filtered = append(filtered, r)
			}
		}
		restaurants = filtered
	}

	sort.SliceStable(restaurants, func(i, j int) bool {
		a, b := restaurants[i], restaurants[j]
		if a.Park != b.Park {
			return a.Park < b.Park
		}
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		return a.Name < b.Name
	})

	return restaurants, nil
}

func (s *CatalogService) Tags() []string {
	return s.store.AllTags()
}

// GroupedTags buckets every tag in use into its category for the browse
// view. Park matching is case-insensitive and keeps an item when any of
// its restaurants is in the park. Only non-empty categories are emitted.
func (s *CatalogService) GroupedTags(park string) map[string]domain.TagGroup {
	cacheKey := "tags:grouped:all"
	if park != "" {
		cacheKey = "tags:grouped:" + strings.ToLower(park)
	}
	if s.cache != nil {
		if raw, ok := s.cache.Get(s.ctx, cacheKey); ok {
			var cached map[string]domain.TagGroup
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	items := s.store.Load(false)
	if park != "" {
		filtered := make([]domain.MenuItem, 0, len(items))
		for _, item := range items {
			for _, r := range item.Restaurants {
				if strings.EqualFold(string(r.Park), park) {
					filtered = append(filtered, item)
					break
				}
			}
		}
		items = filtered
	}

	buckets := make(map[string]map[string]struct{})
	for _, item := range items {
		for _, tag := range item.Tags {
			category, ok := CategorizeTag(tag, item.Restaurants)
			if !ok {
				continue
			}
			if buckets[category] == nil {
				buckets[category] = make(map[string]struct{})
			}
			buckets[category][tag] = struct{}{}
		}
	}

	result := make(map[string]domain.TagGroup, len(buckets))
	for category, tagSet := range buckets {
		tags := make([]string, 0, len(tagSet))
		for tag := range tagSet {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		label, ok := domain.CategoryLabels[category]
		if !ok {
			label = category
		}
		result[category] = domain.TagGroup{Label: label, Tags: tags}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(s.ctx, cacheKey, payload)
		}
	}

	return result
}

// Categories returns the static category catalog with live counts per
// single-valued category key. Items without a key count as "other".
func (s *CatalogService) Categories() []domain.CategoryCount {
	counts := make(map[string]int)
	for _, item := range s.store.Load(false) {
		key := item.Category
		if key == "" {
			key = domain.DefaultCategory
		}
		counts[key]++
	}

	result := make([]domain.CategoryCount, 0, len(domain.MenuCategories))
	for _, def := range domain.MenuCategories {
		result = append(result, domain.CategoryCount{
			Key:         def.Key,
			Label:       def.Label,
			Description: def.Description,
			Count:       counts[def.Key],
		})
	}
	return result
}

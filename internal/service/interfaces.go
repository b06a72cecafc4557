package service

import (
	"tdr-menu-api/internal/domain"
	"tdr-menu-api/internal/storage"
)

type StoreInterface interface {
	Load(forceReload bool) []domain.MenuItem
	GetByID(id string) (*domain.MenuItem, bool)
	AllTags() []string
	AllCategories() []string
	AllRestaurants() []domain.Restaurant
}

type MenuServiceInterface interface {
	List(params ListParams) (*domain.ListResult, error)
	Get(id string) (*domain.MenuItem, error)
	QRCode(id string) ([]byte, error)
}

type CatalogServiceInterface interface {
	Restaurants(park string) ([]domain.Restaurant, error)
	Tags() []string
	GroupedTags(park string) map[string]domain.TagGroup
	Categories() []domain.CategoryCount
}

type StatsServiceInterface interface {
	Stats() domain.Stats
}

var _ StoreInterface = (*storage.Store)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ StatsServiceInterface = (*StatsService)(nil)

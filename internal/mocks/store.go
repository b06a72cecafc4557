package mocks

import (
	"tdr-menu-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a testify mock of service.StoreInterface.
type StoreInterface struct {
	mock.Mock
}

func (m *StoreInterface) Load(forceReload bool) []domain.MenuItem {
	args := m.Called(forceReload)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MenuItem)
}

func (m *StoreInterface) GetByID(id string) (*domain.MenuItem, bool) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Bool(1)
}

func (m *StoreInterface) AllTags() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *StoreInterface) AllCategories() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *StoreInterface) AllRestaurants() []domain.Restaurant {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Restaurant)
}

package tests

import (
	"math"
	"testing"

	"tdr-menu-api/internal/domain"
	"tdr-menu-api/internal/mocks"
	"tdr-menu-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(items []domain.MenuItem) (*service.MenuService, *mocks.StoreInterface) {
	mockStore := new(mocks.StoreInterface)
	mockStore.On("Load", false).Return(items)
	return service.NewMenuService(mockStore), mockStore
}

func defaultParams() service.ListParams {
	return service.ListParams{Page: 1, Limit: 50}
}

func listIDs(t *testing.T, svc *service.MenuService, params service.ListParams) []string {
	t.Helper()
	result, err := svc.List(params)
	require.NoError(t, err)
	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestListValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.ListParams)
	}{
		{name: "page zero", mutate: func(p *service.ListParams) { p.Page = 0 }},
		{name: "limit zero", mutate: func(p *service.ListParams) { p.Limit = 0 }},
		{name: "limit over max", mutate: func(p *service.ListParams) { p.Limit = 101 }},
		{name: "unknown sort", mutate: func(p *service.ListParams) { p.Sort = "popularity" }},
		{name: "unknown order", mutate: func(p *service.ListParams) { p.Order = "sideways" }},
		{name: "unknown park", mutate: func(p *service.ListParams) { p.Park = "epcot" }},
		{name: "negative min price", mutate: func(p *service.ListParams) { v := -1; p.MinPrice = &v }},
		{name: "negative max price", mutate: func(p *service.ListParams) { v := -5; p.MaxPrice = &v }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := new(mocks.StoreInterface)
			svc := service.NewMenuService(mockStore)

			params := defaultParams()
			testCase.mutate(&params)

			_, err := svc.List(params)
			require.Error(t, err)

			var vErr *service.ValidationError
			assert.ErrorAs(t, err, &vErr)
			// Validation fails fast, before the store is touched.
			mockStore.AssertNotCalled(t, "Load", false)
		})
	}
}

func TestListFreeTextSearch(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	params := defaultParams()
	params.Query = "ピザ"
	assert.Equal(t, []string{"1002"}, listIDs(t, svc, params))

	// Description matches too.
	params.Query = "中華まん"
	assert.Equal(t, []string{"1003"}, listIDs(t, svc, params))

	params.Query = "見つからない"
	assert.Empty(t, listIDs(t, svc, params))
}

func TestListFreeTextSearchCaseInsensitive(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "1", Name: "Mickey Waffle", Restaurants: []domain.Restaurant{plazaRestaurant()}},
	}
	svc, _ := newMenuService(items)

	params := defaultParams()
	params.Query = "mickey"
	assert.Equal(t, []string{"1"}, listIDs(t, svc, params))
}

func TestListTagFilterSameCategoryIsOr(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	// カレー and ピザ are both food_type, so one match suffices.
	params := defaultParams()
	params.Tags = []string{"カレー", "ピザ"}
	assert.Equal(t, []string{"1001", "1002", "1003"}, listIDs(t, svc, params))
}

func TestListTagFilterDifferentCategoriesAreAnd(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	// food_type and character groups must both match.
	params := defaultParams()
	params.Tags = []string{"カレー", "ミッキーマウス"}
	assert.Equal(t, []string{"1003"}, listIDs(t, svc, params))
}

func TestListTagFilterUnknownTagsAndIndividually(t *testing.T) {
	items := fixtureItems()
	items[0].Tags = append(items[0].Tags, "ウエスタンランド")
	items[2].Tags = append(items[2].Tags, "メディテレーニアンハーバー")
	svc, _ := newMenuService(items)

	// Two area-style tags are not in any static table, so each forms its
	// own group: no single item carries both.
	params := defaultParams()
	params.Tags = []string{"ウエスタンランド", "メディテレーニアンハーバー"}
	assert.Empty(t, listIDs(t, svc, params))

	params.Tags = []string{"ウエスタンランド", "カレー"}
	assert.Equal(t, []string{"1001"}, listIDs(t, svc, params))
}

func TestListCategoriesFilterMatchesListField(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	params := defaultParams()
	params.Categories = []string{"スナック"}
	assert.Equal(t, []string{"1003"}, listIDs(t, svc, params))

	// Multiple requested categories are OR'd.
	params.Categories = []string{"スナック", "料理"}
	assert.Equal(t, []string{"1001", "1002", "1003"}, listIDs(t, svc, params))
}

func TestListPriceBoundaries(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	min, max := 500, 500
	params := defaultParams()
	params.MinPrice = &min
	params.MaxPrice = &max
	assert.Equal(t, []string{"1003"}, listIDs(t, svc, params))

	min = 501
	params = defaultParams()
	params.MinPrice = &min
	assert.Equal(t, []string{"1001", "1002"}, listIDs(t, svc, params))

	max = 499
	params = defaultParams()
	params.MaxPrice = &max
	assert.Empty(t, listIDs(t, svc, params))
}

func TestListParkAreaCharacterFilters(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	params := defaultParams()
	params.Park = "disneysea"
	assert.Equal(t, []string{"1002", "1003"}, listIDs(t, svc, params))

	params = defaultParams()
	params.Area = "ウエスタン"
	assert.Equal(t, []string{"1001", "1003"}, listIDs(t, svc, params))

	params = defaultParams()
	params.Character = "ミッキー"
	assert.Equal(t, []string{"1003"}, listIDs(t, svc, params))
}

func TestListOnlyAvailable(t *testing.T) {
	items := fixtureItems()
	expired := plazaRestaurant()
	expired.Availability = &domain.AvailabilityPeriod{EndDate: "2000-01-01"}
	items[0].Restaurants = []domain.Restaurant{expired}
	svc, _ := newMenuService(items)

	params := defaultParams()
	params.OnlyAvailable = true
	assert.Equal(t, []string{"1002", "1003"}, listIDs(t, svc, params))

	// Default keeps everything, expired windows included.
	assert.Len(t, listIDs(t, svc, defaultParams()), 3)
}

func TestListSort(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	params := defaultParams()
	params.Sort = "price"
	assert.Equal(t, []string{"1003", "1001", "1002"}, listIDs(t, svc, params))

	params.Order = "desc"
	assert.Equal(t, []string{"1002", "1001", "1003"}, listIDs(t, svc, params))

	params = defaultParams()
	params.Sort = "scraped_at"
	assert.Equal(t, []string{"1003", "1001", "1002"}, listIDs(t, svc, params))
}

func TestListSortStability(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "a", Name: "ポップコーン", Price: domain.PriceInfo{Amount: 400}},
		{ID: "b", Name: "ポップコーン", Price: domain.PriceInfo{Amount: 400}},
		{ID: "c", Name: "チュロス", Price: domain.PriceInfo{Amount: 400}},
	}
	svc, _ := newMenuService(items)

	params := defaultParams()
	params.Sort = "name"
	assert.Equal(t, []string{"c", "a", "b"}, listIDs(t, svc, params))

	// Descending keeps ties in input order as well.
	params.Order = "desc"
	assert.Equal(t, []string{"a", "b", "c"}, listIDs(t, svc, params))

	params = defaultParams()
	params.Sort = "price"
	assert.Equal(t, []string{"a", "b", "c"}, listIDs(t, svc, params))
}

func TestListPagination(t *testing.T) {
	items := make([]domain.MenuItem, 5)
	for i := range items {
		items[i] = domain.MenuItem{ID: string(rune('1' + i)), Name: "item"}
	}
	svc, _ := newMenuService(items)

	params := defaultParams()
	params.Limit = 2
	params.Page = 3

	result, err := svc.List(params)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, domain.ListMeta{Total: 5, Page: 3, Limit: 2, Pages: 3}, result.Meta)

	// Past the last page the slice is empty but total is unchanged.
	params.Page = 10
	result, err = svc.List(params)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 5, result.Meta.Total)
	assert.Equal(t, 3, result.Meta.Pages)
}

func TestListPaginationExtremePage(t *testing.T) {
	svc, _ := newMenuService(fixtureItems())

	// page is only required to be >= 1, so the offset arithmetic must not
	// overflow for values near MaxInt.
	params := defaultParams()
	params.Page = math.MaxInt

	result, err := svc.List(params)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 3, result.Meta.Total)
	assert.Equal(t, 1, result.Meta.Pages)
	assert.Equal(t, math.MaxInt, result.Meta.Page)
}

func TestListDoesNotReorderSnapshot(t *testing.T) {
	items := fixtureItems()
	svc, mockStore := newMenuService(items)

	params := defaultParams()
	params.Sort = "price"
	params.Order = "desc"
	_, err := svc.List(params)
	require.NoError(t, err)

	// The slice handed out by the store keeps its original order.
	assert.Equal(t, "1001", items[0].ID)
	assert.Equal(t, "1002", items[1].ID)
	assert.Equal(t, "1003", items[2].ID)
	mockStore.AssertExpectations(t)
}

func TestGetMenu(t *testing.T) {
	item := fixtureItems()[0]
	mockStore := new(mocks.StoreInterface)
	mockStore.On("GetByID", "1001").Return(&item, true)
	mockStore.On("GetByID", "9999").Return(nil, false)
	svc := service.NewMenuService(mockStore)

	got, err := svc.Get("1001")
	require.NoError(t, err)
	assert.Equal(t, "スペシャルカレー", got.Name)

	_, err = svc.Get("9999")
	assert.ErrorIs(t, err, service.ErrMenuNotFound)
}

func TestMenuQRCode(t *testing.T) {
	withSource := fixtureItems()[0]
	viaRestaurant := fixtureItems()[1] // no source URL, falls back to restaurant URL
	bare := domain.MenuItem{ID: "3001", Name: "URLなし"}

	mockStore := new(mocks.StoreInterface)
	mockStore.On("GetByID", "1001").Return(&withSource, true)
	mockStore.On("GetByID", "1002").Return(&viaRestaurant, true)
	mockStore.On("GetByID", "3001").Return(&bare, true)
	mockStore.On("GetByID", "9999").Return(nil, false)
	svc := service.NewMenuService(mockStore)

	png, err := svc.QRCode("1001")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = svc.QRCode("1002")
	assert.NoError(t, err)

	_, err = svc.QRCode("3001")
	assert.ErrorIs(t, err, service.ErrNoSourceURL)

	_, err = svc.QRCode("9999")
	assert.ErrorIs(t, err, service.ErrMenuNotFound)
}

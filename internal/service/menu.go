package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tdr-menu-api/internal/domain"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrNoSourceURL  = errors.New("menu has no source url")
)

// ValidationError marks a caller-supplied parameter as unusable. Handlers
// map it to a 400; anything else is a 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidParam(format string, v ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, v...)}
}

// ListParams carries the full query contract of the listing endpoint.
type ListParams struct {
	Query         string
	Tags          []string
	Categories    []string
	MinPrice      *int
	MaxPrice      *int
	Park          string
	Area          string
	Character     string
	OnlyAvailable bool
	Sort          string
	Order         string
	Page          int
	Limit         int
}

// Validate rejects out-of-range parameters before any data is touched.
// The engine never clamps: a bad page or limit is the caller's error.
func (p *ListParams) Validate() error {
	if p.Page < 1 {
		return invalidParam("page must be >= 1, got %d", p.Page)
	}
	if p.Limit < 1 || p.Limit > 100 {
		return invalidParam("limit must be between 1 and 100, got %d", p.Limit)
	}
	if p.MinPrice != nil && *p.MinPrice < 0 {
		return invalidParam("min_price must be >= 0, got %d", *p.MinPrice)
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return invalidParam("max_price must be >= 0, got %d", *p.MaxPrice)
	}
	if p.Park != "" && !domain.Park(p.Park).Valid() {
		return invalidParam("unknown park: %s", p.Park)
	}
	switch p.Sort {
	case "", "price", "name", "scraped_at":
	default:
		return invalidParam("unknown sort field: %s", p.Sort)
	}
	switch p.Order {
	case "", "asc", "desc":
	default:
		return invalidParam("unknown sort order: %s", p.Order)
	}
	return nil
}

type MenuService struct {
	store StoreInterface
}

func NewMenuService(store StoreInterface) *MenuService {
	return &MenuService{store: store}
}

// List runs the filter/sort/paginate pipeline over the current snapshot.
// Filter order is fixed: availability first (it changes the denominator
// for everything after it), then search, tags, categories, price, park,
// area, character.
func (s *MenuService) List(params ListParams) (*domain.ListResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Private copy: sorting must not reorder the shared snapshot.
	menus := append([]domain.MenuItem(nil), s.store.Load(false)...)

	if params.OnlyAvailable {
		menus = FilterAvailable(menus, time.Now())
	}

	if params.Query != "" {
		q := strings.ToLower(params.Query)
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			return strings.Contains(strings.ToLower(m.Name), q) ||
				strings.Contains(strings.ToLower(m.Description), q)
		})
	}

	if len(params.Tags) > 0 {
		menus = filterByTagGroups(menus, params.Tags)
	}

	if len(params.Categories) > 0 {
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			for _, want := range params.Categories {
				for _, c := range m.Categories {
					if c == want {
						return true
					}
				}
			}
			return false
		})
	}

	if params.MinPrice != nil {
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			return m.Price.Amount >= *params.MinPrice
		})
	}
	if params.MaxPrice != nil {
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			return m.Price.Amount <= *params.MaxPrice
		})
	}

	if params.Park != "" {
		park := domain.Park(params.Park)
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			for _, r := range m.Restaurants {
				if r.Park == park {
					return true
				}
			}
			return false
		})
	}

	if params.Area != "" {
		area := strings.ToLower(params.Area)
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			for _, r := range m.Restaurants {
				if strings.Contains(strings.ToLower(r.Area), area) {
					return true
				}
			}
			return false
		})
	}

	if params.Character != "" {
		character := strings.ToLower(params.Character)
		menus = filterItems(menus, func(m domain.MenuItem) bool {
			for _, c := range m.Characters {
				if strings.Contains(strings.ToLower(c), character) {
					return true
				}
			}
			return false
		})
	}

	sortMenus(menus, params.Sort, params.Order == "desc")

	total := len(menus)
	pages := (total + params.Limit - 1) / params.Limit

	// Any page past the last one is an empty slice. Checking against pages
	// first also keeps (page-1)*limit from overflowing for absurd pages.
	items := []domain.MenuItem{}
	if params.Page <= pages {
		start := (params.Page - 1) * params.Limit
		end := start + params.Limit
		if end > total {
			end = total
		}
		items = menus[start:end]
	}

	return &domain.ListResult{
		Items: items,
		Meta: domain.ListMeta{
			Total: total,
			Page:  params.Page,
			Limit: params.Limit,
			Pages: pages,
		},
	}, nil
}

// Get returns the item with the given id.
func (s *MenuService) Get(id string) (*domain.MenuItem, error) {
	item, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrMenuNotFound
	}
	return item, nil
}

// filterByTagGroups applies the tag filter: AND across category groups, OR
// within a group. Tags are grouped by the static tables only; a tag not in
// any table (an area or restaurant name) forms its own singleton group, so
// such tags are AND'd individually.
func filterByTagGroups(menus []domain.MenuItem, tags []string) []domain.MenuItem {
	groups := make(map[string][]string)
	for _, tag := range tags {
		if category, ok := staticTagCategory(tag); ok {
			groups[category] = append(groups[category], tag)
		} else {
			groups["dynamic:"+tag] = append(groups["dynamic:"+tag], tag)
		}
	}

	return filterItems(menus, func(m domain.MenuItem) bool {
		menuTags := make(map[string]struct{}, len(m.Tags))
		for _, t := range m.Tags {
			menuTags[t] = struct{}{}
		}
		for _, groupTags := range groups {
			matched := false
			for _, t := range groupTags {
				if _, ok := menuTags[t]; ok {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
		return true
	})
}

func filterItems(menus []domain.MenuItem, keep func(domain.MenuItem) bool) []domain.MenuItem {
	filtered := make([]domain.MenuItem, 0, len(menus))
	for _, m := range menus {
		if keep(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// sortMenus sorts in place. The sort is stable in both directions: equal
// elements keep their prior relative order, descending included.
func sortMenus(menus []domain.MenuItem, field string, desc bool) {
	if field == "" {
		return
	}

	var less func(a, b domain.MenuItem) bool
	switch field {
	case "price":
		less = func(a, b domain.MenuItem) bool { return a.Price.Amount < b.Price.Amount }
	case "name":
		less = func(a, b domain.MenuItem) bool { return a.Name < b.Name }
	case "scraped_at":
		less = func(a, b domain.MenuItem) bool { return a.ScrapedAt < b.ScrapedAt }
	default:
		return
	}

	sort.SliceStable(menus, func(i, j int) bool {
		if desc {
			return less(menus[j], menus[i])
		}
		return less(menus[i], menus[j])
	})
}

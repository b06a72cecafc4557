package domain

// Park identifies one of the two resort parks.
type Park string

const (
	ParkDisneyland Park = "disneyland"
	ParkDisneySea  Park = "disneysea"
)

func (p Park) Valid() bool {
	return p == ParkDisneyland || p == ParkDisneySea
}

// AvailabilityPeriod is the selling window at a single restaurant. Absent
// dates mean the window is open on that side. Dates stay as strings because
// scraped data occasionally carries values that do not parse; malformed
// dates must never exclude an item.
type AvailabilityPeriod struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Restaurant is one selling location embedded in a menu item. The same
// restaurant id may appear in many items.
type Restaurant struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Park         Park                `json:"park"`
	Area         string              `json:"area"`
	ServiceTypes []string            `json:"service_types,omitempty"`
	URL          string              `json:"url"`
	Availability *AvailabilityPeriod `json:"availability,omitempty"`
}

type PriceInfo struct {
	Amount      int    `json:"amount"`
	Unit        string `json:"unit,omitempty"`
	TaxIncluded bool   `json:"tax_included"`
}

// MenuItem is one sellable catalog entry, produced offline by the scraper
// and batch scripts. The serving layer never mutates it.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       PriceInfo `json:"price"`

	ImageURLs    []string `json:"image_urls,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`

	Restaurants []Restaurant `json:"restaurants"`

	// Categories is the scraped free-text label list; Category is the single
	// key assigned by offline classification. They are distinct attributes.
	Categories []string `json:"categories,omitempty"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Characters []string `json:"characters,omitempty"`

	Allergens       []string               `json:"allergens,omitempty"`
	NutritionalInfo map[string]interface{} `json:"nutritional_info,omitempty"`

	SourceURL   string `json:"source_url,omitempty"`
	ScrapedAt   string `json:"scraped_at,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`

	IsSeasonal  bool `json:"is_seasonal"`
	IsNew       bool `json:"is_new"`
	IsAvailable bool `json:"is_available"`
}

// ListMeta describes a page of query results. Total counts items after all
// filters but before pagination.
type ListMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type ListResult struct {
	Items []MenuItem
	Meta  ListMeta
}

// TagGroup is one category bucket in the grouped tag view.
type TagGroup struct {
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
}

// CategoryCount is a static category definition enriched with a live count.
type CategoryCount struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Stats is the catalog-wide summary. Price fields are present only when at
// least one item has a positive price.
type Stats struct {
	TotalMenus       int    `json:"total_menus"`
	AvailableMenus   int    `json:"available_menus"`
	TotalTags        int    `json:"total_tags"`
	TotalCategories  int    `json:"total_categories"`
	TotalRestaurants int    `json:"total_restaurants"`
	MinPrice         *int   `json:"min_price,omitempty"`
	MaxPrice         *int   `json:"max_price,omitempty"`
	AvgPrice         *int   `json:"avg_price,omitempty"`
	LastUpdated      string `json:"last_updated,omitempty"`
}

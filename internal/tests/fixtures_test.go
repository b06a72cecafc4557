package tests

import (
	"tdr-menu-api/internal/domain"
)

func plazaRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:   "335",
		Name: "プラザパビリオン・レストラン",
		Park: domain.ParkDisneyland,
		Area: "ウエスタンランド",
		URL:  "https://www.tokyodisneyresort.jp/tdl/restaurant/detail/335/",
	}
}

func harborRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:   "412",
		Name: "カフェ・ポルトフィーノ",
		Park: domain.ParkDisneySea,
		Area: "メディテレーニアンハーバー",
		URL:  "https://www.tokyodisneyresort.jp/tds/restaurant/detail/412/",
	}
}

// fixtureItems is the shared catalog used by the query and handler tests:
// a curry, a pizza and a Mickey curry bun spanning both parks.
func fixtureItems() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:          "1001",
			Name:        "スペシャルカレー",
			Description: "スパイシーなビーフカレー",
			Price:       domain.PriceInfo{Amount: 900, Unit: "1皿", TaxIncluded: true},
			Restaurants: []domain.Restaurant{plazaRestaurant()},
			Categories:  []string{"料理"},
			Category:    "food",
			Tags:        []string{"カレー"},
			SourceURL:   "https://www.tokyodisneyresort.jp/food/1001/",
			ScrapedAt:   "2025-08-01T10:00:00",
		},
		{
			ID:          "1002",
			Name:        "マルゲリータピザ",
			Description: "石窯で焼き上げたピザ",
			Price:       domain.PriceInfo{Amount: 1200, Unit: "1枚", TaxIncluded: true},
			Restaurants: []domain.Restaurant{harborRestaurant()},
			Categories:  []string{"料理"},
			Category:    "food",
			Tags:        []string{"ピザ"},
			Characters:  []string{"ミニーマウス"},
			ScrapedAt:   "2025-08-03T10:00:00",
		},
		{
			ID:          "1003",
			Name:        "ミッキーカレーまん",
			Description: "ミッキーシェイプの中華まん",
			Price:       domain.PriceInfo{Amount: 500, Unit: "1個", TaxIncluded: true},
			Restaurants: []domain.Restaurant{plazaRestaurant(), harborRestaurant()},
			Categories:  []string{"スナック"},
			Category:    "character_menu",
			Tags:        []string{"カレー", "ミッキーマウス"},
			Characters:  []string{"ミッキーマウス"},
			ScrapedAt:   "2025-07-15T10:00:00",
		},
	}
}

package service

import (
	"time"

	"tdr-menu-api/internal/domain"
)

const dateLayout = "2006-01-02"

// IsAvailable reports whether at least one of the item's restaurants sells
// it on checkDate. An item with no restaurants is never available.
func IsAvailable(item domain.MenuItem, checkDate time.Time) bool {
	day := truncateToDay(checkDate)
	for _, r := range item.Restaurants {
		if restaurantAvailable(r, day) {
			return true
		}
	}
	return false
}

// FilterAvailable keeps the items available on checkDate.
func FilterAvailable(items []domain.MenuItem, checkDate time.Time) []domain.MenuItem {
	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if IsAvailable(item, checkDate) {
			available = append(available, item)
		}
	}
	return available
}

// restaurantAvailable checks one restaurant's selling window. A missing
// window means always available. Dates that fail to parse are ignored so
// that malformed scraped data never excludes an item.
func restaurantAvailable(r domain.Restaurant, day time.Time) bool {
	if r.Availability == nil {
		return true
	}

	if start := r.Availability.StartDate; start != "" {
		if d, err := time.Parse(dateLayout, start); err == nil && day.Before(d) {
			return false
		}
	}

	if end := r.Availability.EndDate; end != "" {
		if d, err := time.Parse(dateLayout, end); err == nil && day.After(d) {
			return false
		}
	}

	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package service

import "tdr-menu-api/internal/domain"

// staticTagCategory looks a tag up in the curated tables, in the fixed
// priority order. A tag listed in two tables resolves to the first one.
func staticTagCategory(tag string) (string, bool) {
	for _, category := range domain.TagCategoryOrder {
		for _, t := range domain.TagCategories[category] {
			if t == tag {
				return category, true
			}
		}
	}
	return "", false
}

// CategorizeTag classifies a tag for the item that carries it. Area and
// restaurant tags are data-driven, so they only match against the given
// item's own restaurant list; a tag that names another item's restaurant
// stays uncategorized here. Uncategorized tags are excluded from the
// grouped view but remain usable as raw filter values.
func CategorizeTag(tag string, restaurants []domain.Restaurant) (string, bool) {
	if category, ok := staticTagCategory(tag); ok {
		return category, true
	}

	for _, r := range restaurants {
		if tag == r.Area {
			return domain.TagCategoryArea, true
		}
	}

	for _, r := range restaurants {
		if tag == r.Name {
			return domain.TagCategoryRestaurant, true
		}
	}

	return "", false
}

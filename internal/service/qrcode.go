package service

import "github.com/skip2/go-qrcode"

// QRCode renders a PNG QR code pointing at the item's official page, so a
// printed or on-screen listing can link back to the source. Falls back to
// the first restaurant URL for items scraped without a source page.
func (s *MenuService) QRCode(id string) ([]byte, error) {
	item, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrMenuNotFound
	}

	target := item.SourceURL
	if target == "" && len(item.Restaurants) > 0 {
		target = item.Restaurants[0].URL
	}
	if target == "" {
		return nil, ErrNoSourceURL
	}

	return qrcode.Encode(target, qrcode.Medium, 256)
}

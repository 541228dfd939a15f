package models

import "strings"

// Product is a catalog entry. Prices are in whole rupees. Rating is stored
// as a number; the star-glyph form is presentation only (see Stars).
type Product struct {
	ID            string  `json:"id"`
	Brand         string  `json:"brand"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Image         string  `json:"img"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
}

// Stars renders the rating as the five-slot glyph string shown on product
// cards, e.g. "★★★★☆" or "★★★½☆".
func (p Product) Stars() string {
	full := int(p.Rating)
	if full > 5 {
		full = 5
	}
	half := p.Rating-float64(full) >= 0.5 && full < 5
	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteRune('★')
	}
	filled := full
	if half {
		b.WriteRune('½')
		filled++
	}
	for i := filled; i < 5; i++ {
		b.WriteRune('☆')
	}
	return b.String()
}

package aggregate

import (
	"math"

	"github.com/shopspring/decimal"

	"lite_rates/internal/domain"
)

// mean Earth radius in kilometres
const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points,
// rounded half-up to two decimals. Either point being nil yields nil.
func HaversineKm(a, b *domain.Coords) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	// rounding error can push h a hair outside [0,1] near antipodal points,
	// which would make Sqrt(1-h) NaN
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := decimal.NewFromFloat(earthRadiusKm * c).Round(2)
	return &d
}

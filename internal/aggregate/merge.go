package aggregate

import "lite_rates/internal/domain"

// MergeHotels joins rate quotes to hotel metadata by hotel id and, when
// both the hotel coordinate and ref are known, attaches the distance.
// A quote without a metadata record keeps zero-value fields; duplicate
// metadata ids resolve last-write-wins. The join never fails.
func MergeHotels(quotes []domain.RateQuote, meta []domain.HotelMetadata, ref *domain.Coords) []domain.AggregatedHotelResult {
	byID := make(map[string]domain.HotelMetadata, len(meta))
	for _, m := range meta {
		byID[m.HotelID] = m
	}

	out := make([]domain.AggregatedHotelResult, 0, len(quotes))
	for _, q := range quotes {
		r := domain.AggregatedHotelResult{HotelID: q.HotelID}
		if m, ok := byID[q.HotelID]; ok {
			r.Name = m.Name
			r.Address = m.Address
			r.Coords = m.Coords
			r.Rating = m.Rating
			r.ReviewCount = m.ReviewCount
			r.Stars = m.Stars
			r.Photos = m.Photos
		}
		r.DistanceKm = HaversineKm(r.Coords, ref)
		out = append(out, r)
	}
	return out
}

package domain

type Coords struct{ Lat, Lon float64 }

// HotelMetadata is one hotel's static content record from the provider's
// data feed. Fetched independently from the rate quotes; joined on HotelID.
type HotelMetadata struct {
	HotelID     string
	Name        *string
	Address     *string
	Coords      *Coords
	Rating      *float64
	ReviewCount *int
	Stars       *int
	Photos      []string
}

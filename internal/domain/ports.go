package domain

import "context"

// RateSearchQuery is the normalized search input shared by the multi-hotel
// and single-hotel rate paths.
type RateSearchQuery struct {
	HotelIDs  []string
	Checkin   string // YYYY-MM-DD
	Checkout  string // YYYY-MM-DD
	Adults    int
	Children  int
	Currency  string
	Reference *Coords // optional point for distance computation
	Enrich    bool    // resolve room catalogues for returned hotels
}

type RatesClient interface {
	SearchRates(ctx context.Context, q RateSearchQuery) ([]RateQuote, error)
	SearchHotels(ctx context.Context, q RateSearchQuery) ([]HotelMetadata, error)
	GetRoomCatalogue(ctx context.Context, hotelID string) ([]RoomCatalogueEntry, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

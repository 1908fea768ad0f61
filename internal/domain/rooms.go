package domain

import "github.com/shopspring/decimal"

// RoomCatalogueEntry is one room type from a hotel's detail payload, keyed
// by the integer id that RoomLineItem.MappedRoomID references.
type RoomCatalogueEntry struct {
	ID           int64
	Name         string
	Description  string
	SizeValue    *float64
	SizeUnit     *string
	MaxAdults    int
	MaxChildren  int
	MaxOccupancy int
	Photos       []string
}

// RoomBreakdownEntry summarises the line items of one offer that share a
// mapped room id. Count is the number of collapsed line items; the display
// fields come from the first line item in the bucket.
type RoomBreakdownEntry struct {
	MappedRoomID *int64
	Name         string
	Count        int
	Adults       int
	Children     int
	MaxAdults    *int
	MaxChildren  *int
	MaxOccupancy *int
	SizeValue    *float64
	SizeUnit     *string
	Photos       []string
	Rooms        []RoomLineItem
}

// GroupedOffer is an offer with its room breakdown attached. The retail
// rate is the offer's own price, authoritative for sorting; it is not
// recomputed from the per-room prices.
type GroupedOffer struct {
	OfferID            string
	Breakdown          []RoomBreakdownEntry
	BoardType          *string
	BoardName          *string
	Perks              []string
	PaymentTypes       []string
	CancellationPolicy *CancellationPolicy
	RetailRate         RateDetail
}

// RoomConfigurationGroup collects every offer of a hotel that shares the
// same room configuration. Breakdown and StartingPrice come from the
// cheapest offer in the group; Offers keeps the hotel's original order.
type RoomConfigurationGroup struct {
	Key           string
	Name          string
	Breakdown     []RoomBreakdownEntry
	StartingPrice RateDetail
	Offers        []GroupedOffer
}

// AggregatedHotelResult is the top-level output unit: merged metadata plus
// the hotel's configuration groups ordered ascending by starting price.
type AggregatedHotelResult struct {
	HotelID        string
	Name           *string
	Address        *string
	Coords         *Coords
	Rating         *float64
	ReviewCount    *int
	Stars          *int
	Photos         []string
	DistanceKm     *decimal.Decimal
	Configurations []RoomConfigurationGroup
}

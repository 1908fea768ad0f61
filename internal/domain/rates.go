package domain

import "github.com/shopspring/decimal"

// Amount is a currency-tagged monetary value. A nil Amount means the
// provider quoted the component without a usable number ("price unknown").
type Amount struct {
	Currency string
	Amount   *decimal.Decimal
}

// RateDetail carries the price components of an offer or a room line.
// Each component is a list because one offer may expose several pricing
// sources; comparisons always read the first element.
type RateDetail struct {
	Total        []Amount
	Suggested    []Amount
	Initial      []Amount
	TaxesAndFees []Amount
}

type CancellationPolicy struct {
	RefundableTag  string
	CancelPolicies []CancelWindow
}

// CancelWindow is one step of a cancellation schedule: the fee charged when
// cancelling at or after CancelTime.
type CancelWindow struct {
	CancelTime string
	Fee        Amount
}

// RoomLineItem is one physical room instance within an offer. An offer for
// two identical rooms carries two line items.
type RoomLineItem struct {
	MappedRoomID *int64 // links to the hotel's room catalogue; may be absent
	Name         string
	Adults       int
	Children     int
	Perks        []string
	Rate         RateDetail

	// Set only when the mapped room resolves against the catalogue.
	Description  *string
	SizeValue    *float64
	SizeUnit     *string
	MaxAdults    *int
	MaxChildren  *int
	MaxOccupancy *int
	Photos       []string
}

// Offer is one independently bookable price/terms quote for a combination
// of rooms. OfferID is the opaque token a later prebook call requires and
// must survive the pipeline unchanged.
type Offer struct {
	OfferID            string
	Rooms              []RoomLineItem
	BoardType          *string
	BoardName          *string
	Perks              []string
	PaymentTypes       []string
	CancellationPolicy *CancellationPolicy
	Price              RateDetail
}

// RateQuote is the per-hotel unit of the provider's rates response.
type RateQuote struct {
	HotelID string
	Offers  []Offer
}

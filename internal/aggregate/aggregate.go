// Package aggregate turns the provider's two loosely-correlated payloads,
// per-hotel rate quotes and hotel metadata, into the UI-ready hierarchy
// hotels → room configurations → offers → room breakdowns. It is pure and
// re-entrant: no I/O, no shared state, output depends only on input.
package aggregate

import (
	"fmt"

	"lite_rates/internal/domain"
)

// Input is everything one search needs. Catalogues and Reference are
// optional; absent entries degrade to unenriched rooms and nil distances.
type Input struct {
	Quotes     []domain.RateQuote
	Metadata   []domain.HotelMetadata
	Catalogues map[string][]domain.RoomCatalogueEntry
	Reference  *domain.Coords
}

// ContractError marks structurally invalid pipeline output caused by a
// broken upstream contract. Graceful degradation (missing metadata, unknown
// prices, absent catalogue entries) never produces one.
type ContractError struct {
	HotelID string
	OfferID string
	Reason  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("aggregate: contract violation for hotel %q offer %q: %s", e.HotelID, e.OfferID, e.Reason)
}

// Build runs the full pipeline: merge metadata, enrich every line item from
// the hotel's catalogue, group by offer, then group by room configuration.
// Hotels come back in quote order; they are not re-sorted across hotels.
func Build(in Input) ([]domain.AggregatedHotelResult, error) {
	results := MergeHotels(in.Quotes, in.Metadata, in.Reference)

	for i, q := range in.Quotes {
		catalogue := in.Catalogues[q.HotelID]

		offers := make([]domain.Offer, len(q.Offers))
		copy(offers, q.Offers)
		for oi := range offers {
			rooms := make([]domain.RoomLineItem, len(offers[oi].Rooms))
			for ri, room := range offers[oi].Rooms {
				rooms[ri] = EnrichRoom(room, catalogue)
			}
			offers[oi].Rooms = rooms
		}

		grouped := GroupOffers(offers)
		if err := checkGrouping(q.HotelID, offers, grouped); err != nil {
			return nil, err
		}
		results[i].Configurations = GroupConfigurations(grouped)
	}
	return results, nil
}

// checkGrouping verifies breakdown counts reconcile exactly with the source
// offers: every count >= 1 and per-offer counts summing to the offer's line
// items. A mismatch means a grouping defect worth surfacing, not degrading.
func checkGrouping(hotelID string, offers []domain.Offer, grouped []domain.GroupedOffer) error {
	if len(grouped) != len(offers) {
		return &ContractError{HotelID: hotelID, Reason: fmt.Sprintf("%d offers grouped into %d", len(offers), len(grouped))}
	}
	for i, g := range grouped {
		total := 0
		for _, e := range g.Breakdown {
			if e.Count < 1 {
				return &ContractError{HotelID: hotelID, OfferID: g.OfferID, Reason: fmt.Sprintf("breakdown entry count %d", e.Count)}
			}
			total += e.Count
		}
		if total != len(offers[i].Rooms) {
			return &ContractError{
				HotelID: hotelID,
				OfferID: g.OfferID,
				Reason:  fmt.Sprintf("breakdown covers %d of %d line items", total, len(offers[i].Rooms)),
			}
		}
	}
	return nil
}

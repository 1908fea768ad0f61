package aggregate

import "lite_rates/internal/domain"

// mappedKey is the breakdown bucket key. Line items without a mapped room
// id share the sentinel key 0 so they collapse into one bucket.
func mappedKey(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// GroupOffers builds one grouped offer per input offer, collapsing line
// items that share a mapped room id into counted breakdown entries.
// Buckets keep first-seen order within the offer; the entry's display and
// capacity fields come from the first line item in its bucket. Offer-level
// fields (board, perks, payment, cancellation, price) are copied as-is;
// the offer's own price stays authoritative.
func GroupOffers(offers []domain.Offer) []domain.GroupedOffer {
	out := make([]domain.GroupedOffer, 0, len(offers))
	for _, o := range offers {
		g := domain.GroupedOffer{
			OfferID:            o.OfferID,
			Breakdown:          []domain.RoomBreakdownEntry{},
			BoardType:          o.BoardType,
			BoardName:          o.BoardName,
			Perks:              o.Perks,
			PaymentTypes:       o.PaymentTypes,
			CancellationPolicy: o.CancellationPolicy,
			RetailRate:         o.Price,
		}
		if len(o.Rooms) == 0 {
			out = append(out, g)
			continue
		}

		idx := make(map[int64]int, len(o.Rooms))
		for _, room := range o.Rooms {
			k := mappedKey(room.MappedRoomID)
			if i, ok := idx[k]; ok {
				e := &g.Breakdown[i]
				e.Count++
				e.Rooms = append(e.Rooms, room)
				continue
			}
			idx[k] = len(g.Breakdown)
			g.Breakdown = append(g.Breakdown, domain.RoomBreakdownEntry{
				MappedRoomID: room.MappedRoomID,
				Name:         room.Name,
				Count:        1,
				Adults:       room.Adults,
				Children:     room.Children,
				MaxAdults:    room.MaxAdults,
				MaxChildren:  room.MaxChildren,
				MaxOccupancy: room.MaxOccupancy,
				SizeValue:    room.SizeValue,
				SizeUnit:     room.SizeUnit,
				Photos:       room.Photos,
				Rooms:        []domain.RoomLineItem{room},
			})
		}
		out = append(out, g)
	}
	return out
}

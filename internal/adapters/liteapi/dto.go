package liteapi

import (
	"github.com/shopspring/decimal"

	"lite_rates/internal/domain"
)

// Wire shapes cover only what the aggregation engine consumes; unknown
// fields are ignored on decode.

type ratesResponse struct {
	Data []rateQuoteDTO `json:"data"`
}

type rateQuoteDTO struct {
	HotelID string     `json:"hotelId"`
	Offers  []offerDTO `json:"offers"`
}

type offerDTO struct {
	OfferID            string           `json:"offerId"`
	Rooms              []roomLineDTO    `json:"rooms"`
	BoardType          *string          `json:"boardType"`
	BoardName          *string          `json:"boardName"`
	Perks              []string         `json:"perks"`
	PaymentTypes       []string         `json:"paymentTypes"`
	CancellationPolicy *cancelPolicyDTO `json:"cancellationPolicy"`
	Price              rateDetailDTO    `json:"price"`
}

type roomLineDTO struct {
	MappedRoomID *int64        `json:"mappedRoomId"`
	Name         string        `json:"name"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
	Perks        []string      `json:"perks"`
	Rate         rateDetailDTO `json:"rate"`
}

type rateDetailDTO struct {
	Total        []amountDTO `json:"total"`
	Suggested    []amountDTO `json:"suggestedSellingPrice"`
	Initial      []amountDTO `json:"initialPrice"`
	TaxesAndFees []amountDTO `json:"taxesAndFees"`
}

type amountDTO struct {
	Currency string           `json:"currency"`
	Amount   *decimal.Decimal `json:"amount"`
}

type cancelPolicyDTO struct {
	RefundableTag  string            `json:"refundableTag"`
	CancelPolicies []cancelWindowDTO `json:"cancelPolicyInfos"`
}

type cancelWindowDTO struct {
	CancelTime string    `json:"cancelTime"`
	Fee        amountDTO `json:"fee"`
}

type hotelsResponse struct {
	Data []hotelDTO `json:"data"`
}

type hotelDTO struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"reviewCount"`
	Stars       *int     `json:"stars"`
	Photos      []string `json:"photos"`
}

type hotelDetailResponse struct {
	Data struct {
		Rooms []catalogueRoomDTO `json:"rooms"`
	} `json:"data"`
}

type catalogueRoomDTO struct {
	ID           int64      `json:"id"`
	Name         string     `json:"roomName"`
	Description  string     `json:"description"`
	SizeValue    *float64   `json:"roomSizeSquare"`
	SizeUnit     *string    `json:"roomSizeUnit"`
	MaxAdults    int        `json:"maxAdults"`
	MaxChildren  int        `json:"maxChildren"`
	MaxOccupancy int        `json:"maxOccupancy"`
	Photos       []photoDTO `json:"photos"`
}

type photoDTO struct {
	URL string `json:"url"`
}

func (q rateQuoteDTO) toDomain() domain.RateQuote {
	offers := make([]domain.Offer, 0, len(q.Offers))
	for _, o := range q.Offers {
		offers = append(offers, o.toDomain())
	}
	return domain.RateQuote{HotelID: q.HotelID, Offers: offers}
}

func (o offerDTO) toDomain() domain.Offer {
	rooms := make([]domain.RoomLineItem, 0, len(o.Rooms))
	for _, r := range o.Rooms {
		rooms = append(rooms, domain.RoomLineItem{
			MappedRoomID: r.MappedRoomID,
			Name:         r.Name,
			Adults:       r.Adults,
			Children:     r.Children,
			Perks:        r.Perks,
			Rate:         r.Rate.toDomain(),
		})
	}
	out := domain.Offer{
		OfferID:      o.OfferID, // opaque prebook token, passed through untouched
		Rooms:        rooms,
		BoardType:    o.BoardType,
		BoardName:    o.BoardName,
		Perks:        o.Perks,
		PaymentTypes: o.PaymentTypes,
		Price:        o.Price.toDomain(),
	}
	if o.CancellationPolicy != nil {
		cp := domain.CancellationPolicy{RefundableTag: o.CancellationPolicy.RefundableTag}
		for _, w := range o.CancellationPolicy.CancelPolicies {
			cp.CancelPolicies = append(cp.CancelPolicies, domain.CancelWindow{
				CancelTime: w.CancelTime,
				Fee:        domain.Amount{Currency: w.Fee.Currency, Amount: w.Fee.Amount},
			})
		}
		out.CancellationPolicy = &cp
	}
	return out
}

func (r rateDetailDTO) toDomain() domain.RateDetail {
	return domain.RateDetail{
		Total:        amounts(r.Total),
		Suggested:    amounts(r.Suggested),
		Initial:      amounts(r.Initial),
		TaxesAndFees: amounts(r.TaxesAndFees),
	}
}

func amounts(in []amountDTO) []domain.Amount {
	if in == nil {
		return nil
	}
	out := make([]domain.Amount, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Amount{Currency: a.Currency, Amount: a.Amount})
	}
	return out
}

func (h hotelDTO) toDomain() domain.HotelMetadata {
	m := domain.HotelMetadata{
		HotelID:     h.ID,
		Name:        h.Name,
		Address:     h.Address,
		Rating:      h.Rating,
		ReviewCount: h.ReviewCount,
		Stars:       h.Stars,
		Photos:      h.Photos,
	}
	if h.Latitude != nil && h.Longitude != nil {
		m.Coords = &domain.Coords{Lat: *h.Latitude, Lon: *h.Longitude}
	}
	return m
}

func (r catalogueRoomDTO) toDomain() domain.RoomCatalogueEntry {
	e := domain.RoomCatalogueEntry{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		SizeValue:    r.SizeValue,
		SizeUnit:     r.SizeUnit,
		MaxAdults:    r.MaxAdults,
		MaxChildren:  r.MaxChildren,
		MaxOccupancy: r.MaxOccupancy,
	}
	for _, p := range r.Photos {
		if p.URL != "" {
			e.Photos = append(e.Photos, p.URL)
		}
	}
	return e
}

package aggregate_test

import (
	"github.com/shopspring/decimal"

	"lite_rates/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func money(amount float64) []domain.Amount {
	d := decimal.NewFromFloat(amount)
	return []domain.Amount{{Currency: "EUR", Amount: &d}}
}

// unknownMoney is a price list whose first element carries no amount.
func unknownMoney() []domain.Amount {
	return []domain.Amount{{Currency: "EUR"}}
}

func rate(total float64) domain.RateDetail {
	return domain.RateDetail{Total: money(total)}
}

func line(roomID int64, name string, total float64) domain.RoomLineItem {
	return domain.RoomLineItem{
		MappedRoomID: ptr(roomID),
		Name:         name,
		Adults:       2,
		Rate:         rate(total),
	}
}

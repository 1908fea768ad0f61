package aggregate

import (
	"github.com/shopspring/decimal"

	"lite_rates/internal/domain"
)

// firstAmount returns the leading amount of a price list, or nil when the
// list is empty or its first element carries no number.
func firstAmount(list []domain.Amount) *decimal.Decimal {
	if len(list) == 0 {
		return nil
	}
	return list[0].Amount
}

// lessByTotal orders two retail rates ascending by their leading total.
// Unknown prices sort after every known price; equal or both-unknown pairs
// report false so stable sorts keep the original order.
func lessByTotal(a, b domain.RateDetail) bool {
	pa, pb := firstAmount(a.Total), firstAmount(b.Total)
	switch {
	case pa == nil:
		return false
	case pb == nil:
		return true
	default:
		return pa.LessThan(*pb)
	}
}

// groupSortKey is the ordering key for configuration groups: the leading
// total, or zero when unresolvable. An unknown-priced group therefore sorts
// ahead of every priced group, not last as in representative selection.
// Intentional quirk: existing consumers depend on this ordering.
func groupSortKey(r domain.RateDetail) decimal.Decimal {
	if p := firstAmount(r.Total); p != nil {
		return *p
	}
	return decimal.Zero
}

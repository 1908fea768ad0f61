package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"lite_rates/internal/domain"
)

const (
	// configuration key for offers without any room breakdown; all such
	// offers collapse into a single group
	unknownConfigKey = "unknown"

	fallbackConfigName = "Room"
)

// sortedBreakdown returns a copy of the entries ordered by mapped room id
// ascending, absent ids last. This order drives both the configuration key
// and the group display name.
func sortedBreakdown(entries []domain.RoomBreakdownEntry) []domain.RoomBreakdownEntry {
	s := make([]domain.RoomBreakdownEntry, len(entries))
	copy(s, entries)
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i].MappedRoomID, s[j].MappedRoomID
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return s
}

// configKey canonicalizes a breakdown into its room-configuration
// signature: "{count}x{id}" tokens joined with "|", absent ids rendered as
// 0. Two offers share a configuration iff their keys are identical.
func configKey(entries []domain.RoomBreakdownEntry) string {
	if len(entries) == 0 {
		return unknownConfigKey
	}
	tokens := make([]string, 0, len(entries))
	for _, e := range sortedBreakdown(entries) {
		tokens = append(tokens, fmt.Sprintf("%dx%d", e.Count, mappedKey(e.MappedRoomID)))
	}
	return strings.Join(tokens, "|")
}

// configName derives the group's display name from a breakdown: the room
// name verbatim for a single count-1 entry, otherwise "{count} x {name}"
// entries joined with " + " in key order.
func configName(entries []domain.RoomBreakdownEntry) string {
	if len(entries) == 0 {
		return fallbackConfigName
	}
	s := sortedBreakdown(entries)
	if len(s) == 1 && s[0].Count == 1 {
		return s[0].Name
	}
	parts := make([]string, 0, len(s))
	for _, e := range s {
		parts = append(parts, fmt.Sprintf("%d x %s", e.Count, e.Name))
	}
	return strings.Join(parts, " + ")
}

// GroupConfigurations partitions a hotel's grouped offers by configuration
// key and orders the groups ascending by starting price. Within a group the
// cheapest offer (unknown prices last, ties stable) is the representative:
// it supplies the group's breakdown, display name and starting price. The
// group's offer list keeps the hotel's original offer order. The final
// ordering uses groupSortKey, so unknown-priced groups sort as zero.
func GroupConfigurations(offers []domain.GroupedOffer) []domain.RoomConfigurationGroup {
	var order []string
	groups := make(map[string][]domain.GroupedOffer)
	for _, o := range offers {
		k := configKey(o.Breakdown)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], o)
	}

	out := make([]domain.RoomConfigurationGroup, 0, len(order))
	for _, k := range order {
		members := groups[k]
		byPrice := make([]domain.GroupedOffer, len(members))
		copy(byPrice, members)
		sort.SliceStable(byPrice, func(i, j int) bool {
			return lessByTotal(byPrice[i].RetailRate, byPrice[j].RetailRate)
		})
		rep := byPrice[0]
		out = append(out, domain.RoomConfigurationGroup{
			Key:           k,
			Name:          configName(rep.Breakdown),
			Breakdown:     rep.Breakdown,
			StartingPrice: rep.RetailRate,
			Offers:        members,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return groupSortKey(out[i].StartingPrice).LessThan(groupSortKey(out[j].StartingPrice))
	})
	return out
}

package aggregate

import "lite_rates/internal/domain"

// EnrichRoom overlays catalogue fields onto a rate line item. The catalogue
// name wins over any name already on the line. A nil catalogue or an
// unmatched mapped id returns the line unchanged; a nil catalogue photo
// list propagates as nil, not an empty slice.
func EnrichRoom(line domain.RoomLineItem, catalogue []domain.RoomCatalogueEntry) domain.RoomLineItem {
	if line.MappedRoomID == nil {
		return line
	}
	for _, e := range catalogue {
		if e.ID != *line.MappedRoomID {
			continue
		}
		if e.Name != "" {
			line.Name = e.Name
		}
		if e.Description != "" {
			desc := e.Description
			line.Description = &desc
		}
		line.SizeValue = e.SizeValue
		line.SizeUnit = e.SizeUnit
		maxAdults, maxChildren, maxOcc := e.MaxAdults, e.MaxChildren, e.MaxOccupancy
		line.MaxAdults = &maxAdults
		line.MaxChildren = &maxChildren
		line.MaxOccupancy = &maxOcc
		line.Photos = e.Photos
		return line
	}
	return line
}

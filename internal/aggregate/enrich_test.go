package aggregate_test

import (
	"testing"

	"lite_rates/internal/aggregate"
	"lite_rates/internal/domain"
)

func TestEnrichRoom_CatalogueNameWins(t *testing.T) {
	item := domain.RoomLineItem{MappedRoomID: ptr(int64(5)), Name: "X"}
	catalogue := []domain.RoomCatalogueEntry{
		{ID: 5, Name: "Y", Description: "sea view", MaxAdults: 3, MaxChildren: 1, MaxOccupancy: 4, Photos: []string{"p1"}},
	}

	got := aggregate.EnrichRoom(item, catalogue)
	if got.Name != "Y" {
		t.Fatalf("expected catalogue name Y, got %q", got.Name)
	}
	if got.Description == nil || *got.Description != "sea view" {
		t.Fatalf("description not overlaid: %+v", got.Description)
	}
	if got.MaxAdults == nil || *got.MaxAdults != 3 || *got.MaxOccupancy != 4 {
		t.Fatalf("capacity not overlaid: %+v", got)
	}
	if len(got.Photos) != 1 || got.Photos[0] != "p1" {
		t.Fatalf("photos not replaced: %v", got.Photos)
	}
}

func TestEnrichRoom_NoMatchUnchanged(t *testing.T) {
	item := domain.RoomLineItem{MappedRoomID: ptr(int64(9)), Name: "X", Photos: []string{"orig"}}
	catalogue := []domain.RoomCatalogueEntry{{ID: 5, Name: "Y"}}

	got := aggregate.EnrichRoom(item, catalogue)
	if got.Name != "X" || got.Photos[0] != "orig" {
		t.Fatalf("unmatched item should be unchanged: %+v", got)
	}
}

func TestEnrichRoom_NilMappedID(t *testing.T) {
	item := domain.RoomLineItem{Name: "X"}
	got := aggregate.EnrichRoom(item, []domain.RoomCatalogueEntry{{ID: 0, Name: "Y"}})
	if got.Name != "X" {
		t.Fatalf("nil mapped id must not enrich, got %q", got.Name)
	}
}

func TestEnrichRoom_NilCatalogue(t *testing.T) {
	item := domain.RoomLineItem{MappedRoomID: ptr(int64(5)), Name: "X"}
	got := aggregate.EnrichRoom(item, nil)
	if got.Name != "X" {
		t.Fatalf("nil catalogue must not enrich, got %q", got.Name)
	}
}

func TestEnrichRoom_NilPhotosPropagate(t *testing.T) {
	item := domain.RoomLineItem{MappedRoomID: ptr(int64(5)), Photos: []string{"orig"}}
	catalogue := []domain.RoomCatalogueEntry{{ID: 5, Name: "Y", Photos: nil}}

	got := aggregate.EnrichRoom(item, catalogue)
	// "no photos in catalogue" must stay nil, not become an empty list
	if got.Photos != nil {
		t.Fatalf("expected nil photos, got %v", got.Photos)
	}
}

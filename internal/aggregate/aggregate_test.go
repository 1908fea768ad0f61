package aggregate_test

import (
	"reflect"
	"testing"

	"lite_rates/internal/aggregate"
	"lite_rates/internal/domain"
)

func scenarioInput() aggregate.Input {
	return aggregate.Input{
		Quotes: []domain.RateQuote{{
			HotelID: "H1",
			Offers: []domain.Offer{
				{
					OfferID: "offer-1",
					Rooms:   []domain.RoomLineItem{line(5, "Double", 100)},
					Price:   rate(100),
				},
				{
					OfferID: "offer-2",
					Rooms: []domain.RoomLineItem{
						line(5, "Double", 90),
						line(5, "Double", 90),
						line(7, "Suite", 200),
					},
					Price: rate(200),
				},
			},
		}},
		Metadata: []domain.HotelMetadata{
			{HotelID: "H1", Name: ptr("Hotel A"), Coords: &domain.Coords{Lat: 10, Lon: 10}},
		},
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	out, err := aggregate.Build(scenarioInput())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(out))
	}
	h := out[0]
	if h.HotelID != "H1" || h.Name == nil || *h.Name != "Hotel A" {
		t.Fatalf("metadata not merged: %+v", h)
	}
	if len(h.Configurations) != 2 {
		t.Fatalf("expected 2 configuration groups, got %d", len(h.Configurations))
	}

	first, second := h.Configurations[0], h.Configurations[1]
	if first.Key != "1x5" {
		t.Fatalf("first group key %q", first.Key)
	}
	if !first.StartingPrice.Total[0].Amount.Equal(*money(100)[0].Amount) {
		t.Fatalf("first group priced %s", first.StartingPrice.Total[0].Amount)
	}
	if second.Key != "2x5|1x7" {
		t.Fatalf("second group key %q", second.Key)
	}
	if !second.StartingPrice.Total[0].Amount.Equal(*money(200)[0].Amount) {
		t.Fatalf("second group priced %s", second.StartingPrice.Total[0].Amount)
	}
	if second.Offers[0].OfferID != "offer-2" {
		t.Fatalf("offer id not preserved: %q", second.Offers[0].OfferID)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	a, err := aggregate.Build(scenarioInput())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, err := aggregate.Build(scenarioInput())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs over the same input must produce identical output")
	}
}

func TestBuild_GroupingCompleteness(t *testing.T) {
	in := scenarioInput()
	out, err := aggregate.Build(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := 0
	for _, o := range in.Quotes[0].Offers {
		want += len(o.Rooms)
	}
	got := 0
	for _, cfg := range out[0].Configurations {
		for _, o := range cfg.Offers {
			for _, e := range o.Breakdown {
				got += len(e.Rooms)
				if e.Count != len(e.Rooms) {
					t.Fatalf("count %d != retained line items %d", e.Count, len(e.Rooms))
				}
			}
		}
	}
	if got != want {
		t.Fatalf("line items dropped or duplicated: %d != %d", got, want)
	}
}

func TestBuild_EnrichmentFlowsIntoBreakdown(t *testing.T) {
	in := scenarioInput()
	in.Catalogues = map[string][]domain.RoomCatalogueEntry{
		"H1": {{ID: 5, Name: "Catalogue Double", MaxAdults: 2, MaxOccupancy: 3, Photos: []string{"p"}}},
	}

	out, err := aggregate.Build(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	cfg := out[0].Configurations[0]
	if cfg.Name != "Catalogue Double" {
		t.Fatalf("enriched name should drive the group name, got %q", cfg.Name)
	}
	e := cfg.Breakdown[0]
	if e.MaxOccupancy == nil || *e.MaxOccupancy != 3 || len(e.Photos) != 1 {
		t.Fatalf("enrichment missing from breakdown: %+v", e)
	}
}

func TestBuild_EmptyInputs(t *testing.T) {
	out, err := aggregate.Build(aggregate.Input{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no results, got %d", len(out))
	}
}

package liteapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lite_rates/internal/adapters/liteapi"
	"lite_rates/internal/domain"
)

func TestClient_SearchRates_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			if r.Header.Get("X-API-Key") != "test-key" {
				w.WriteHeader(401)
				return
			}
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{
					"hotelId": "h1",
					"offers": []map[string]any{{
						"offerId": "tok-abc",
						"rooms": []map[string]any{{
							"mappedRoomId": 5,
							"name":         "Double",
							"adults":       2,
						}},
						"price": map[string]any{
							"total": []map[string]any{{"currency": "EUR", "amount": 99.5}},
						},
					}},
				}},
			})
		}
	}))
	defer ts.Close()

	cl, err := liteapi.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.SearchRates(ctx, domain.RateSearchQuery{HotelIDs: []string{"h1"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].HotelID != "h1" {
		t.Fatalf("unexpected quotes: %+v", got)
	}
	offer := got[0].Offers[0]
	if offer.OfferID != "tok-abc" {
		t.Fatalf("offer id must pass through untouched, got %q", offer.OfferID)
	}
	if offer.Rooms[0].MappedRoomID == nil || *offer.Rooms[0].MappedRoomID != 5 {
		t.Fatalf("unexpected room line: %+v", offer.Rooms[0])
	}
	if offer.Price.Total[0].Amount == nil || offer.Price.Total[0].Amount.String() != "99.5" {
		t.Fatalf("unexpected price: %+v", offer.Price.Total)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetRoomCatalogue_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := liteapi.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.GetRoomCatalogue(ctx, "h1")
	if !errors.Is(err, liteapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_RequiresKey(t *testing.T) {
	if _, err := liteapi.New("http://example", "", 5); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestClient_NullAmountDecodesAsUnknown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"data":[{"hotelId":"h1","offers":[{"offerId":"o","price":{"total":[{"currency":"EUR","amount":null}]}}]}]}`))
	}))
	defer ts.Close()

	cl, _ := liteapi.New(ts.URL, "test-key", 100)
	got, err := cl.SearchRates(context.Background(), domain.RateSearchQuery{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	total := got[0].Offers[0].Price.Total
	if len(total) != 1 || total[0].Amount != nil {
		t.Fatalf("null amount should decode to nil, got %+v", total)
	}
}

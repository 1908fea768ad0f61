package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lite_rates/internal/app"
	"lite_rates/internal/domain"
)

// RatesService is what the handlers need from the application layer.
type RatesService interface {
	SearchRates(ctx context.Context, q domain.RateSearchQuery) ([]domain.AggregatedHotelResult, error)
	HotelRates(ctx context.Context, hotelID string, q domain.RateSearchQuery) (domain.AggregatedHotelResult, error)
}

type Handlers struct{ S RatesService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels/rates", h.searchRates)
	s.mux.Get("/v1/hotels/{id}/rates", h.hotelRates)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// parseQuery builds a RateSearchQuery from URL parameters. Returns a
// problem detail string on invalid input.
func parseQuery(r *http.Request) (domain.RateSearchQuery, string) {
	q := domain.RateSearchQuery{
		Checkin:  r.URL.Query().Get("checkin"),
		Checkout: r.URL.Query().Get("checkout"),
		Currency: strings.ToUpper(r.URL.Query().Get("currency")),
		Adults:   2,
	}
	if ids := r.URL.Query().Get("hotelIds"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if t := strings.TrimSpace(id); t != "" {
				q.HotelIDs = append(q.HotelIDs, t)
			}
		}
	}
	if v := r.URL.Query().Get("adults"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 10 {
			return q, "adults must be an integer between 1 and 10"
		}
		q.Adults = n
	}
	if v := r.URL.Query().Get("children"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 10 {
			return q, "children must be an integer between 0 and 10"
		}
		q.Children = n
	}

	latS, lonS := r.URL.Query().Get("lat"), r.URL.Query().Get("lon")
	if latS != "" || lonS != "" {
		lat, errLat := strconv.ParseFloat(latS, 64)
		lon, errLon := strconv.ParseFloat(lonS, 64)
		if errLat != nil || errLon != nil {
			return q, "lat and lon must both be valid numbers"
		}
		q.Reference = &domain.Coords{Lat: lat, Lon: lon}
	}
	if v := r.URL.Query().Get("enrich"); v != "" {
		q.Enrich = v == "1" || strings.EqualFold(v, "true")
	}
	return q, ""
}

func (h *Handlers) searchRates(w http.ResponseWriter, r *http.Request) {
	q, detail := parseQuery(r)
	if detail != "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", detail)
		return
	}
	if len(q.HotelIDs) == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "hotelIds is required")
		return
	}

	results, err := h.S.SearchRates(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("rates search failed")
		writeProblem(w, http.StatusBadGateway, "Upstream failure", "rates search failed")
		return
	}
	writeJSON(w, r, results)
}

func (h *Handlers) hotelRates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q, detail := parseQuery(r)
	if detail != "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", detail)
		return
	}

	result, err := h.S.HotelRates(r.Context(), id, q)
	if err != nil {
		if errors.Is(err, app.ErrNoRates) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no rates for this hotel")
			return
		}
		log.Error().Err(err).Str("hotel", id).Msg("hotel rates failed")
		writeProblem(w, http.StatusBadGateway, "Upstream failure", "hotel rates failed")
		return
	}
	writeJSON(w, r, result)
}

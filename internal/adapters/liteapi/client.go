// Package liteapi is the outbound client for the rates provider. It covers
// the three fetches the aggregation engine consumes: per-search rate
// quotes, hotel metadata, and a single hotel's room catalogue.
package liteapi

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"lite_rates/internal/adapters/observability"
	"lite_rates/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound     = errors.New("liteapi: not found")
	ErrUnauthorized = errors.New("liteapi: unauthorized")
	ErrForbidden    = errors.New("liteapi: forbidden")
)

// ---- Public API ----

func (c *Client) SearchRates(ctx context.Context, q domain.RateSearchQuery) ([]domain.RateQuote, error) {
	v := searchValues(q)
	var out ratesResponse
	if err := c.get(ctx, "rates", c.base+"/hotels/rates?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	quotes := make([]domain.RateQuote, 0, len(out.Data))
	for _, d := range out.Data {
		quotes = append(quotes, d.toDomain())
	}
	return quotes, nil
}

func (c *Client) SearchHotels(ctx context.Context, q domain.RateSearchQuery) ([]domain.HotelMetadata, error) {
	v := url.Values{}
	if len(q.HotelIDs) > 0 {
		v.Set("hotelIds", strings.Join(q.HotelIDs, ","))
	}
	var out hotelsResponse
	if err := c.get(ctx, "hotels", c.base+"/data/hotels?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	meta := make([]domain.HotelMetadata, 0, len(out.Data))
	for _, h := range out.Data {
		meta = append(meta, h.toDomain())
	}
	return meta, nil
}

func (c *Client) GetRoomCatalogue(ctx context.Context, hotelID string) ([]domain.RoomCatalogueEntry, error) {
	v := url.Values{}
	v.Set("hotelId", hotelID)
	var out hotelDetailResponse
	if err := c.get(ctx, "hotel", c.base+"/data/hotel?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	rooms := make([]domain.RoomCatalogueEntry, 0, len(out.Data.Rooms))
	for _, r := range out.Data.Rooms {
		rooms = append(rooms, r.toDomain())
	}
	return rooms, nil
}

func searchValues(q domain.RateSearchQuery) url.Values {
	v := url.Values{}
	if len(q.HotelIDs) > 0 {
		v.Set("hotelIds", strings.Join(q.HotelIDs, ","))
	}
	if q.Checkin != "" {
		v.Set("checkin", q.Checkin)
	}
	if q.Checkout != "" {
		v.Set("checkout", q.Checkout)
	}
	if q.Adults > 0 {
		v.Set("adults", strconv.Itoa(q.Adults))
	}
	if q.Children > 0 {
		v.Set("children", strconv.Itoa(q.Children))
	}
	if q.Currency != "" {
		v.Set("currency", q.Currency)
	}
	return v
}

// ---- Internals ----

// get performs a GET with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring Retry-After
// when provided.
func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-API-Key", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "lite-rates/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			observability.ObserveUpstream(endpoint, 0, time.Since(start))
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveUpstream(endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay (200ms, 400ms, 800ms...)
// with up to +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"lite_rates/internal/adapters/observability"
	"lite_rates/internal/aggregate"
	"lite_rates/internal/domain"
)

// ErrNoRates is returned when the provider quotes no offers for a hotel.
var ErrNoRates = errors.New("no rates available")

type SearchService struct {
	client   domain.RatesClient
	cache    domain.Cache
	cacheTTL time.Duration
	workers  int64
}

func NewSearchService(c domain.RatesClient, cache domain.Cache, ttl time.Duration, workers int) *SearchService {
	if workers <= 0 {
		workers = 8
	}
	return &SearchService{client: c, cache: cache, cacheTTL: ttl, workers: int64(workers)}
}

// SearchRates fetches rate quotes and hotel metadata concurrently, then
// aggregates them. A failed metadata fetch degrades to bare rate results;
// a failed rates fetch fails the search. When q.Enrich is set, room
// catalogues are resolved for every quoted hotel before aggregation.
func (s *SearchService) SearchRates(ctx context.Context, q domain.RateSearchQuery) ([]domain.AggregatedHotelResult, error) {
	var (
		quotes []domain.RateQuote
		meta   []domain.HotelMetadata
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = s.client.SearchRates(gctx, q)
		return err
	})
	g.Go(func() error {
		m, err := s.client.SearchHotels(gctx, q)
		if err != nil {
			// metadata is display enrichment only
			log.Warn().Err(err).Msg("hotel metadata fetch failed, serving rates without it")
			return nil
		}
		meta = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var catalogues map[string][]domain.RoomCatalogueEntry
	if q.Enrich {
		ids := make([]string, 0, len(quotes))
		for _, quote := range quotes {
			ids = append(ids, quote.HotelID)
		}
		catalogues = s.roomCatalogues(ctx, ids)
	}

	results, err := aggregate.Build(aggregate.Input{
		Quotes:     quotes,
		Metadata:   meta,
		Catalogues: catalogues,
		Reference:  q.Reference,
	})
	if err != nil {
		return nil, err
	}
	observability.ObserveAggregation(len(results))
	return results, nil
}

// HotelRates returns one hotel's aggregated rates with full room-catalogue
// enrichment.
func (s *SearchService) HotelRates(ctx context.Context, hotelID string, q domain.RateSearchQuery) (domain.AggregatedHotelResult, error) {
	q.HotelIDs = []string{hotelID}
	q.Enrich = true
	results, err := s.SearchRates(ctx, q)
	if err != nil {
		return domain.AggregatedHotelResult{}, err
	}
	for _, r := range results {
		if r.HotelID == hotelID {
			return r, nil
		}
	}
	return domain.AggregatedHotelResult{}, ErrNoRates
}

// roomCatalogues resolves catalogues for the given hotels, cache-first,
// with bounded concurrent provider fetches. Misses are non-fatal: a hotel
// whose catalogue cannot be fetched simply stays unenriched.
func (s *SearchService) roomCatalogues(ctx context.Context, hotelIDs []string) map[string][]domain.RoomCatalogueEntry {
	out := make(map[string][]domain.RoomCatalogueEntry, len(hotelIDs))
	results := make([][]domain.RoomCatalogueEntry, len(hotelIDs))

	sem := semaphore.NewWeighted(s.workers)
	var g errgroup.Group
	for i, id := range hotelIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		i, id := i, id
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = s.roomCatalogue(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range hotelIDs {
		if results[i] != nil {
			out[id] = results[i]
		}
	}
	return out
}

func (s *SearchService) roomCatalogue(ctx context.Context, hotelID string) []domain.RoomCatalogueEntry {
	key := fmt.Sprintf("rooms:%s", hotelID)
	var cached []domain.RoomCatalogueEntry
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}
	rooms, err := s.client.GetRoomCatalogue(ctx, hotelID)
	if err != nil {
		log.Warn().Str("hotel", hotelID).Err(err).Msg("room catalogue fetch failed")
		return nil
	}
	if s.cache != nil && len(rooms) > 0 {
		_ = s.cache.Set(ctx, key, rooms, int(s.cacheTTL.Seconds()))
	}
	return rooms
}

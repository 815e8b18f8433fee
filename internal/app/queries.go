package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/domain"
)

// Cache keys for the catalog reads. The seeder evicts exactly these.
const (
	KeyRooms        = "rooms:all"
	KeyLocations    = "locations:all"
	KeyDestinations = "destinations:all"
	KeyRestaurants  = "restaurants:all"
	KeyReservations = "reservations:all"
)

// CatalogKeys lists every key QueryService populates.
var CatalogKeys = []string{KeyRooms, KeyLocations, KeyDestinations, KeyRestaurants, KeyReservations}

type QueryService struct {
	repo     domain.CatalogRepository
	rewards  domain.RewardsRepository
	cache    domain.Cache // nil disables caching
	cacheTTL time.Duration
}

func NewQueryService(r domain.CatalogRepository, rw domain.RewardsRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, rewards: rw, cache: c, cacheTTL: ttl}
}

// cached is cache-aside around load. Cache failures are logged and never fail the read.
func cached[T any](ctx context.Context, s *QueryService, key string, load func(context.Context) (T, error)) (T, error) {
	var v T
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &v)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		if ok {
			return v, nil
		}
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return v, nil
}

func (s *QueryService) rooms(ctx context.Context) ([]domain.Room, error) {
	return cached(ctx, s, KeyRooms, s.repo.ListRooms)
}

func (s *QueryService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms(ctx)
}

func (s *QueryService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return cached(ctx, s, KeyLocations, s.repo.ListLocations)
}

// location resolves a destination slug against the location list.
func (s *QueryService) location(ctx context.Context, slug string) (domain.Location, error) {
	locs, err := s.ListLocations(ctx)
	if err != nil {
		return domain.Location{}, err
	}
	for _, l := range locs {
		if l.Value == slug {
			return l, nil
		}
	}
	return domain.Location{}, domain.ErrUnknownDestination
}

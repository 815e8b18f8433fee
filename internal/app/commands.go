package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"napoleon_resorts/internal/domain"
)

// Snapshot is a full catalog to write into a repository.
type Snapshot struct {
	Rooms        []domain.Room
	Locations    []domain.Location
	Destinations []domain.Destination
	Restaurants  []domain.Restaurant
	Reservations []domain.Reservation
}

// SeedTask writes every row of one kind, in snapshot order. Key is the cache entry the
// writes make stale.
type SeedTask struct {
	Kind string
	Key  string
	IDs  []string
	run  func(ctx context.Context, i int) error
}

type SeedService struct {
	repo  domain.CatalogRepository
	cache domain.Cache // nil skips invalidation
}

func NewSeedService(r domain.CatalogRepository, c domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: c}
}

// Plan turns a snapshot into one task per non-empty kind. Rows of a kind are written by
// a single task so the store sees them in snapshot order.
func (s *SeedService) Plan(snap Snapshot) []SeedTask {
	var tasks []SeedTask
	add := func(kind, key string, ids []string, run func(context.Context, int) error) {
		if len(ids) > 0 {
			tasks = append(tasks, SeedTask{Kind: kind, Key: key, IDs: ids, run: run})
		}
	}

	ids := make([]string, len(snap.Rooms))
	for i, r := range snap.Rooms {
		ids[i] = r.ID
	}
	add("room", KeyRooms, ids, func(ctx context.Context, i int) error { return s.repo.UpsertRoom(ctx, snap.Rooms[i]) })

	ids = make([]string, len(snap.Locations))
	for i, l := range snap.Locations {
		ids[i] = l.Value
	}
	add("location", KeyLocations, ids, func(ctx context.Context, i int) error { return s.repo.UpsertLocation(ctx, snap.Locations[i]) })

	ids = make([]string, len(snap.Destinations))
	for i, d := range snap.Destinations {
		ids[i] = d.ID
	}
	add("destination", KeyDestinations, ids, func(ctx context.Context, i int) error {
		return s.repo.UpsertDestination(ctx, snap.Destinations[i])
	})

	ids = make([]string, len(snap.Restaurants))
	for i, r := range snap.Restaurants {
		ids[i] = strconv.FormatInt(r.ID, 10)
	}
	add("restaurant", KeyRestaurants, ids, func(ctx context.Context, i int) error {
		return s.repo.UpsertRestaurant(ctx, snap.Restaurants[i])
	})

	ids = make([]string, len(snap.Reservations))
	for i, r := range snap.Reservations {
		ids[i] = r.ID
	}
	add("reservation", KeyReservations, ids, func(ctx context.Context, i int) error {
		return s.repo.UpsertReservation(ctx, snap.Reservations[i])
	})
	return tasks
}

// Run writes the task's rows, skipping past failed ones, then evicts the task's cache
// entry. The eviction happens even after failures so a partial write is never hidden
// behind an old snapshot. It returns the number of rows written.
func (s *SeedService) Run(ctx context.Context, t SeedTask) (int, error) {
	var (
		n    int
		errs []error
	)
	for i, id := range t.IDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := t.run(ctx, i); err != nil {
			errs = append(errs, fmt.Errorf("seed %s %s: %w", t.Kind, id, err))
			continue
		}
		n++
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, t.Key); err != nil {
			log.Warn().Err(err).Str("key", t.Key).Msg("cache invalidation failed")
		}
	}
	return n, errors.Join(errs...)
}

// SeedAll runs the tasks with at most workers in flight. It returns the rows written and
// every failure joined.
func (s *SeedService) SeedAll(ctx context.Context, snap Snapshot, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	tasks := s.Plan(snap)
	sem := semaphore.NewWeighted(int64(workers))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		ok   int
	)
	for _, t := range tasks {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func(t SeedTask) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := s.Run(ctx, t)
			mu.Lock()
			defer mu.Unlock()
			ok += n
			if err != nil {
				log.Warn().Str("kind", t.Kind).Err(err).Msg("seed failed")
				errs = append(errs, err)
				return
			}
			log.Info().Str("kind", t.Kind).Int("rows", n).Msg("seed ok")
		}(t)
	}
	wg.Wait()
	return ok, errors.Join(errs...)
}

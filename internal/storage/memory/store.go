// Package memory is the catalog store used when no database is configured. It starts out
// seeded with the static catalog and accepts upserts like the MySQL store.
package memory

import (
	"context"
	"sync"

	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	rooms        []domain.Room
	locations    []domain.Location
	destinations []domain.Destination
	restaurants  []domain.Restaurant
	reservations []domain.Reservation
}

// New returns an empty store.
func New() *Store { return &Store{} }

// Seeded returns a store holding the full static catalog.
func Seeded() *Store {
	return &Store{
		rooms:        catalog.Rooms(),
		locations:    catalog.Locations(),
		destinations: catalog.Destinations(),
		restaurants:  catalog.Restaurants(),
		reservations: catalog.Reservations(),
	}
}

// upsert replaces the element matching key or appends v, keeping insertion order.
func upsert[T any, K comparable](s []T, v T, key func(T) K) []T {
	k := key(v)
	for i := range s {
		if key(s[i]) == k {
			s[i] = v
			return s
		}
	}
	return append(s, v)
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func (m *Store) UpsertRoom(ctx context.Context, r domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms = upsert(m.rooms, r, func(r domain.Room) string { return r.ID })
	return nil
}

func (m *Store) UpsertLocation(ctx context.Context, l domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations = upsert(m.locations, l, func(l domain.Location) string { return l.Value })
	return nil
}

func (m *Store) UpsertDestination(ctx context.Context, d domain.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destinations = upsert(m.destinations, d, func(d domain.Destination) string { return d.ID })
	return nil
}

func (m *Store) UpsertRestaurant(ctx context.Context, r domain.Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restaurants = upsert(m.restaurants, r, func(r domain.Restaurant) int64 { return r.ID })
	return nil
}

func (m *Store) UpsertReservation(ctx context.Context, r domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations = upsert(m.reservations, r, func(r domain.Reservation) string { return r.ID })
	return nil
}

func (m *Store) ListRooms(ctx context.Context) ([]domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.rooms), nil
}

func (m *Store) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (m *Store) ListLocations(ctx context.Context) ([]domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.locations), nil
}

func (m *Store) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.destinations), nil
}

func (m *Store) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.restaurants), nil
}

func (m *Store) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.reservations), nil
}

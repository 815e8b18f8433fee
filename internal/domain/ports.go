package domain

import (
	"context"
	"time"
)

type CatalogRepository interface {
	// Write paths
	UpsertRoom(ctx context.Context, r Room) error
	UpsertLocation(ctx context.Context, l Location) error
	UpsertDestination(ctx context.Context, d Destination) error
	UpsertRestaurant(ctx context.Context, r Restaurant) error
	UpsertReservation(ctx context.Context, r Reservation) error

	// Read paths
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	ListLocations(ctx context.Context) ([]Location, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	ListReservations(ctx context.Context) ([]Reservation, error)
}

// RewardsRepository serves the loyalty dashboard of the signed-in member.
type RewardsRepository interface {
	GetMember(ctx context.Context) (Member, error)
	ListTierBenefits(ctx context.Context) ([]TierBenefits, error)
	ListRewardItems(ctx context.Context) ([]RewardItem, error)
	ListActivity(ctx context.Context) ([]Activity, error)
	ListOffers(ctx context.Context) ([]Offer, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

package memory_test

import (
	"context"
	"errors"
	"testing"

	"napoleon_resorts/internal/domain"
	"napoleon_resorts/internal/storage/memory"
)

func TestSeeded_HasCatalog(t *testing.T) {
	s := memory.Seeded()
	ctx := context.Background()

	rooms, _ := s.ListRooms(ctx)
	locs, _ := s.ListLocations(ctx)
	dests, _ := s.ListDestinations(ctx)
	rests, _ := s.ListRestaurants(ctx)
	res, _ := s.ListReservations(ctx)
	if len(rooms) != 4 || len(locs) != 30 || len(dests) != 6 || len(rests) != 6 || len(res) != 4 {
		t.Fatalf("unexpected catalog sizes: rooms=%d locs=%d dests=%d rests=%d res=%d",
			len(rooms), len(locs), len(dests), len(rests), len(res))
	}
}

func TestUpsertRoom_ReplacesInPlace(t *testing.T) {
	s := memory.Seeded()
	ctx := context.Background()

	r, err := s.GetRoom(ctx, "2")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	r.Price = domain.Dollars(500)
	if err := s.UpsertRoom(ctx, r); err != nil {
		t.Fatalf("UpsertRoom: %v", err)
	}

	rooms, _ := s.ListRooms(ctx)
	if len(rooms) != 4 || rooms[1].ID != "2" || rooms[1].Price != domain.Dollars(500) {
		t.Fatalf("unexpected rooms after upsert: %+v", rooms)
	}
}

func TestGetRoom_NotFound(t *testing.T) {
	_, err := memory.New().GetRoom(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRooms_ReturnsCopy(t *testing.T) {
	s := memory.Seeded()
	ctx := context.Background()

	rooms, _ := s.ListRooms(ctx)
	rooms[0].Name = "mutated"

	again, _ := s.ListRooms(ctx)
	if again[0].Name == "mutated" {
		t.Fatalf("store leaked its backing slice")
	}
}

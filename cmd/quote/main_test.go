package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"napoleon_resorts/internal/booking"
	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
)

// fakeClient prices the static catalog locally.
type fakeClient struct{ quoted string }

func (f *fakeClient) SearchRooms(ctx context.Context, q domain.StayQuery) (domain.SearchResult, error) {
	n := booking.ComputeNights(q.CheckIn, q.CheckOut)
	rooms := booking.FilterRoomsByCapacity(catalog.Rooms(), q.Guests)
	return domain.SearchResult{Query: q, Nights: n, Searched: true, Rooms: booking.PriceRooms(rooms, n)}, nil
}

func (f *fakeClient) QuoteRoom(ctx context.Context, roomID string, q domain.StayQuery) (domain.BookingSummary, error) {
	f.quoted = roomID
	for _, r := range catalog.Rooms() {
		if r.ID == roomID {
			return domain.BookingSummary{
				QuoteID: "q-1", Room: r, CheckIn: *q.CheckIn, CheckOut: *q.CheckOut, Guests: q.Guests,
				Pricing: booking.PriceRoom(r, booking.ComputeNights(q.CheckIn, q.CheckOut)),
			}, nil
		}
	}
	return domain.BookingSummary{}, domain.ErrNotFound
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-destination", "reno-nv", "-check-in", "2024-03-02", "-check-out", "2024-03-05", "-room", "2"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if opts.query.Guests != domain.DefaultGuests || opts.roomID != "2" || opts.query.CheckIn == nil {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if got := booking.ComputeNights(opts.query.CheckIn, opts.query.CheckOut); got != 3 {
		t.Fatalf("nights: %d", got)
	}

	if _, err := parseFlags([]string{"-check-in", "tomorrow"}); err == nil {
		t.Fatalf("expected a date error")
	}
}

func TestRun_PicksCheapestByDefault(t *testing.T) {
	opts, _ := parseFlags([]string{"-destination", "reno-nv", "-check-in", "2024-03-02", "-check-out", "2024-03-05"})
	fc := &fakeClient{}
	var buf bytes.Buffer

	if err := run(context.Background(), fc, opts, &buf); err != nil {
		t.Fatalf("err: %v", err)
	}
	if fc.quoted != "3" {
		t.Fatalf("expected cheapest room 3, quoted %q", fc.quoted)
	}
	if !strings.Contains(buf.String(), "Total") || !strings.Contains(buf.String(), "$1056.55") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRun_ExplicitRoom(t *testing.T) {
	in := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 3)
	opts := options{query: domain.StayQuery{Destination: "reno-nv", CheckIn: &in, CheckOut: &out, Guests: 2}, roomID: "2"}
	fc := &fakeClient{}
	var buf bytes.Buffer

	if err := run(context.Background(), fc, opts, &buf); err != nil {
		t.Fatalf("err: %v", err)
	}
	if fc.quoted != "2" || !strings.Contains(buf.String(), "$1574.05") {
		t.Fatalf("quoted %q, output:\n%s", fc.quoted, buf.String())
	}
}

func TestRun_RoomNotInResults(t *testing.T) {
	opts, _ := parseFlags([]string{"-destination", "reno-nv", "-check-in", "2024-03-02", "-check-out", "2024-03-05", "-guests", "3", "-room", "2"})
	if err := run(context.Background(), &fakeClient{}, opts, &bytes.Buffer{}); err == nil {
		t.Fatalf("room 2 sleeps 2 and must not be quotable for 3 guests")
	}
}

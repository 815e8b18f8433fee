// Command quote searches rooms through the booking API, picks one and prints its summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/adapters/bookingapi"
	"napoleon_resorts/internal/adapters/observability"
	"napoleon_resorts/internal/booking"
	"napoleon_resorts/internal/domain"
	"napoleon_resorts/internal/shared"
)

type bookingClient interface {
	SearchRooms(ctx context.Context, q domain.StayQuery) (domain.SearchResult, error)
	QuoteRoom(ctx context.Context, roomID string, q domain.StayQuery) (domain.BookingSummary, error)
}

type options struct {
	query  domain.StayQuery
	roomID string // empty picks the cheapest match
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	dest := fs.String("destination", "", "destination slug, e.g. las-vegas-nv")
	in := fs.String("check-in", "", "check-in date (YYYY-MM-DD)")
	out := fs.String("check-out", "", "check-out date (YYYY-MM-DD)")
	guests := fs.Int("guests", domain.DefaultGuests, "number of guests")
	room := fs.String("room", "", "room id to quote (default: cheapest available)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	q := domain.NewStayQuery()
	q.Destination = *dest
	q.Guests = *guests
	for _, d := range []struct {
		raw string
		dst **time.Time
	}{{*in, &q.CheckIn}, {*out, &q.CheckOut}} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, d.raw)
		if err != nil {
			return options{}, fmt.Errorf("bad date %q: %w", d.raw, err)
		}
		*d.dst = &t
	}
	return options{query: q, roomID: *room}, nil
}

func run(ctx context.Context, c bookingClient, opts options, w io.Writer) error {
	res, err := c.SearchRooms(ctx, opts.query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(res.Rooms) == 0 {
		return fmt.Errorf("no rooms for %d guests in %s", opts.query.Guests, res.Location.Label)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tROOM\tSLEEPS\tNIGHTLY\tTOTAL (%d nights)\n", res.Nights)
	for _, pr := range res.Rooms {
		fmt.Fprintf(tw, "%s\t%s\t%d\t$%s\t$%s\n", pr.Room.ID, pr.Room.Name, pr.Room.MaxGuests, pr.Room.Price, pr.Pricing.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var sel booking.Selection
	for _, pr := range res.Rooms {
		switch {
		case opts.roomID != "" && pr.Room.ID == opts.roomID:
			sel.Select(pr.Room)
		case opts.roomID == "":
			if cur, ok := sel.Current(); !ok || pr.Room.Price < cur.Price {
				sel.Select(pr.Room)
			}
		}
	}
	room, ok := sel.Current()
	if !ok {
		return fmt.Errorf("room %s is not among the search results", opts.roomID)
	}

	sum, err := c.QuoteRoom(ctx, room.ID, opts.query)
	if err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	fmt.Fprintf(w, "\nBooking summary %s\n", sum.QuoteID)
	fmt.Fprintf(w, "  %s at %s\n", sum.Room.Name, sum.Location.Label)
	fmt.Fprintf(w, "  %s to %s, %d guests\n", sum.CheckIn.Format(time.DateOnly), sum.CheckOut.Format(time.DateOnly), sum.Guests)
	fmt.Fprintf(w, "  Room total ($%s x %d nights)  $%s\n", sum.Room.Price, sum.Pricing.Nights, sum.Pricing.RoomTotal)
	fmt.Fprintf(w, "  Taxes (%d%%)                   $%s\n", booking.TaxRatePercent, sum.Pricing.Taxes)
	fmt.Fprintf(w, "  Resort fee                   $%s\n", sum.Pricing.Fees)
	fmt.Fprintf(w, "  Total                        $%s\n", sum.Pricing.Total)
	return nil
}

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	client, err := bookingapi.New(cfg.APIBase, cfg.APIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize booking API client")
	}

	figure.NewFigure("Napoleon", "", true).Print()
	fmt.Println("")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := run(ctx, client, opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("quote failed")
	}
}

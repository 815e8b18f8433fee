package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"napoleon_resorts/internal/app"
	"napoleon_resorts/internal/domain"
)

// stayParams is the raw query string of a search or quote. Presence is checked by the
// booking rules; here only the shape of what was sent.
type stayParams struct {
	Destination string `validate:"omitempty,max=64"`
	CheckIn     string `validate:"omitempty,datetime=2006-01-02"`
	CheckOut    string `validate:"omitempty,datetime=2006-01-02"`
	Guests      string `validate:"omitempty,number,max=9"`
}

func readStay(r *http.Request) stayParams {
	qs := r.URL.Query()
	return stayParams{
		Destination: qs.Get("destination"),
		CheckIn:     qs.Get("check_in"),
		CheckOut:    qs.Get("check_out"),
		Guests:      qs.Get("guests"),
	}
}

func parseDay(s string, loc *time.Location) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// toQuery converts validated params, reading dates as calendar days in loc. A guest
// count that does not parse is an invalid guest count, never the default.
func (p stayParams) toQuery(loc *time.Location) (domain.StayQuery, error) {
	q := domain.NewStayQuery()
	q.Destination = p.Destination
	q.CheckIn = parseDay(p.CheckIn, loc)
	q.CheckOut = parseDay(p.CheckOut, loc)
	if p.Guests != "" {
		n, err := strconv.Atoi(p.Guests)
		if err != nil {
			return domain.StayQuery{}, fmt.Errorf("%w: %q", domain.ErrInvalidGuests, p.Guests)
		}
		q.Guests = n
	}
	return q, nil
}

func (h *Handlers) stayQuery(w http.ResponseWriter, r *http.Request) (domain.StayQuery, bool) {
	p := readStay(r)
	if err := h.v.Struct(p); err != nil {
		tagOutcome(r, "invalid")
		writeInvalid(w, err)
		return domain.StayQuery{}, false
	}
	q, err := p.toQuery(h.Loc)
	if err != nil {
		tagOutcome(r, app.Outcome(err))
		writeError(w, r, err)
		return domain.StayQuery{}, false
	}
	return q, true
}

func (h *Handlers) searchRooms(w http.ResponseWriter, r *http.Request) {
	q, ok := h.stayQuery(w, r)
	if !ok {
		return
	}
	out, err := h.Q.SearchRooms(r.Context(), q, h.now())
	if err != nil {
		tagOutcome(r, app.Outcome(err))
		writeError(w, r, err)
		return
	}
	if len(out.Rooms) == 0 {
		tagOutcome(r, "empty")
	} else {
		tagOutcome(r, "ok")
	}
	writeJSON(w, r, out)
}

func (h *Handlers) quoteRoom(w http.ResponseWriter, r *http.Request) {
	q, ok := h.stayQuery(w, r)
	if !ok {
		return
	}
	out, err := h.Q.QuoteRoom(r.Context(), chi.URLParam(r, "id"), q, h.now())
	tagOutcome(r, app.Outcome(err))
	if err != nil {
		writeError(w, r, err)
		return
	}
	// every quote carries a fresh id
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, out)
}

package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/app"
	"napoleon_resorts/internal/domain"
)

type Handlers struct {
	Q     *app.QueryService
	Clock domain.Clock
	Loc   *time.Location // resort time zone; stay dates and "today" are read in it
	v     *validator.Validate
}

func NewHandlers(q *app.QueryService, clock domain.Clock, loc *time.Location) *Handlers {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Handlers{Q: q, Clock: clock, Loc: loc, v: validator.New(validator.WithRequiredStructEnabled())}
}

func (h *Handlers) now() time.Time { return h.Clock.Now().In(h.Loc) }

type problem struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/locations", h.listLocations)
		r.Get("/destinations", h.listDestinations)
		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/search", h.searchRooms)
		r.Get("/rooms/{id}/quote", h.quoteRoom)
		r.Get("/restaurants", h.listRestaurants)
		r.Get("/restaurants/locations", h.restaurantLocations)
		r.Get("/reservations", h.listReservations)
		r.Get("/rewards", h.memberRewards)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, fields ...string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Fields: fields}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// writeInvalid reports struct validation failures field by field.
func writeInvalid(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field()+": "+fe.Tag())
	}
	writeProblem(w, http.StatusBadRequest, "Invalid query", "one or more parameters are malformed", fields...)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with a weak ETag and answers a matching If-None-Match with 304.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) listLocations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListLocations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListRooms(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	out, err := h.Q.ListDestinations(r.Context(), domain.DestinationsQuery{
		Search: qs.Get("search"),
		Region: qs.Get("region"),
		SortBy: qs.Get("sort"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	out, err := h.Q.ListRestaurants(r.Context(), domain.RestaurantsQuery{
		Search:   qs.Get("search"),
		Cuisine:  qs.Get("cuisine"),
		Location: qs.Get("location"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) restaurantLocations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.RestaurantLocations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

type reservationsParams struct {
	Tab string `validate:"omitempty,oneof=all hotel restaurant upcoming"`
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	p := reservationsParams{Tab: r.URL.Query().Get("tab")}
	if err := h.v.Struct(p); err != nil {
		writeInvalid(w, err)
		return
	}
	if p.Tab == "" {
		p.Tab = domain.TabAll
	}
	out, err := h.Q.ListReservations(r.Context(), p.Tab, h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) memberRewards(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.MemberRewards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, out)
}

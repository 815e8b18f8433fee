package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/adapters/observability"
	"napoleon_resorts/internal/app"
	"napoleon_resorts/internal/storage/memory"
)

func accessLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("access log is not one JSON line: %v (%q)", err, buf.String())
	}
	return line
}

func TestInstrument_LogsRoutePatternStatusAndOutcome(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Instrument(zerolog.New(&buf)))
	r.Get("/v1/rooms/{id}/quote", func(w http.ResponseWriter, r *http.Request) {
		tagOutcome(r, "not_found")
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/42/quote", nil)
	req.RemoteAddr = "10.0.0.7:52100"
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := accessLog(t, &buf)
	if line["message"] != "http_request" || line["route"] != "/v1/rooms/{id}/quote" {
		t.Fatalf("unexpected line: %v", line)
	}
	if line["status"] != float64(404) || line["outcome"] != "not_found" || line["remote"] != "10.0.0.7" {
		t.Fatalf("unexpected line: %v", line)
	}
	if id, _ := line["request_id"].(string); id == "" {
		t.Fatalf("request id missing: %v", line)
	}

	reg := observability.InitRegistry()
	rr := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	want := `napoleon_http_requests_total{method="GET",route="/v1/rooms/{id}/quote",status="404"}`
	if !strings.Contains(string(body), want) {
		t.Fatalf("expected %s in metrics", want)
	}
}

func TestInstrument_NoOutcomeOutsideBookingRoutes(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(Instrument(zerolog.New(&buf)))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	line := accessLog(t, &buf)
	if _, ok := line["outcome"]; ok {
		t.Fatalf("outcome should be absent: %v", line)
	}
	if line["status"] != float64(200) {
		t.Fatalf("implicit 200 not recorded: %v", line)
	}
}

func TestInstrument_UnmatchedRouteFallsBackToPath(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(Instrument(zerolog.New(&buf)))
	r.Get("/v1/locations", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if line := accessLog(t, &buf); line["route"] != "/nowhere" || line["status"] != float64(404) {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestHandlers_TagSearchAndQuoteOutcomes(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	q := app.NewQueryService(memory.Seeded(), memory.Rewards{}, nil, time.Minute)
	srv := New()
	srv.MountHandlers(NewHandlers(q, fixedClock{time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}, time.UTC))
	r := srv.Mux()

	stay := "destination=las-vegas-nv&check_in=2024-03-02&check_out=2024-03-05"
	cases := []struct {
		url     string
		outcome string
	}{
		{"/v1/rooms/search?" + stay + "&guests=2", "ok"},
		{"/v1/rooms/search?" + stay + "&guests=0", "invalid"},
		{"/v1/rooms/search?" + stay + "&guests=two", "invalid"},
		{"/v1/rooms/2/quote?" + stay, "ok"},
		{"/v1/rooms/nope/quote?" + stay, "not_found"},
	}
	for _, tc := range cases {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.url, nil))
		if got := accessLog(t, &buf)["outcome"]; got != tc.outcome {
			t.Fatalf("%s: outcome %v, want %s", tc.url, got, tc.outcome)
		}
	}
}

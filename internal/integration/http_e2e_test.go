//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"napoleon_resorts/internal/adapters/bookingapi"
	server "napoleon_resorts/internal/adapters/http_server"
	redisad "napoleon_resorts/internal/adapters/redis"
	"napoleon_resorts/internal/app"
	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
	"napoleon_resorts/internal/storage/memory"
	mysqlrepo "napoleon_resorts/internal/storage/mysql"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var today = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func day(offset int) *time.Time {
	t := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	return &t
}

func startAPI(t *testing.T, repo domain.CatalogRepository, cache domain.Cache) *httptest.Server {
	t.Helper()
	q := app.NewQueryService(repo, memory.Rewards{}, cache, time.Minute)
	srv := server.New()
	srv.MountHandlers(server.NewHandlers(q, fixedClock{today}, time.UTC))
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

// exercise drives the API through the client the quote CLI uses.
func exercise(t *testing.T, baseURL string) {
	t.Helper()
	cl, err := bookingapi.New(baseURL, 100)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx := context.Background()
	stay := domain.StayQuery{Destination: "las-vegas-nv", CheckIn: day(1), CheckOut: day(4), Guests: 2}

	res, err := cl.SearchRooms(ctx, stay)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !res.Searched || res.Nights != 3 || len(res.Rooms) != 4 {
		t.Fatalf("unexpected search: %+v", res)
	}

	sum, err := cl.QuoteRoom(ctx, "2", stay)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if sum.Pricing.Total != 157405 || sum.Location.Value != "las-vegas-nv" {
		t.Fatalf("unexpected quote: %+v", sum)
	}

	big := stay
	big.Guests = 6
	res, err = cl.SearchRooms(ctx, big)
	if err != nil || len(res.Rooms) != 0 || !res.Searched {
		t.Fatalf("empty search: %+v, %v", res, err)
	}

	bad := stay
	bad.CheckOut = day(0)
	if _, err := cl.SearchRooms(ctx, bad); err == nil {
		t.Fatalf("inverted dates must be rejected")
	}

	for _, g := range []int{0, 7} {
		party := stay
		party.Guests = g
		var pe *bookingapi.ProblemError
		if _, err := cl.SearchRooms(ctx, party); !errors.As(err, &pe) || pe.Status != http.StatusBadRequest {
			t.Fatalf("guests=%d: expected a 400 problem, got %v", g, err)
		}
	}

	resp, err := http.Get(baseURL + "/v1/destinations?region=West&sort=name")
	if err != nil {
		t.Fatalf("GET destinations: %v", err)
	}
	defer resp.Body.Close()
	var dests []domain.Destination
	if err := json.NewDecoder(resp.Body).Decode(&dests); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dests) != 2 || dests[0].ID != "las-vegas-nv" || dests[1].ID != "reno-nv" {
		t.Fatalf("unexpected destinations: %+v", dests)
	}
}

func TestHTTP_EndToEnd_MemoryWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	ts := startAPI(t, memory.Seeded(), cache)
	exercise(t, ts.URL)

	if !mr.Exists(app.KeyRooms) || !mr.Exists(app.KeyLocations) {
		t.Fatalf("expected catalog reads to be cached, keys=%v", mr.Keys())
	}
}

// ---------- MySQL-backed variant ----------

func applyMigrations(t *testing.T, db *sql.DB, dir string) {
	t.Helper()
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func TestHTTP_EndToEnd_MySQLSeeded(t *testing.T) {
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		t.Skip("MIGRATIONS_DIR not set; export it (e.g. MIGRATIONS_DIR=$PWD/migrations)")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=napoleon"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/napoleon?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db, dir)

	repo := mysqlrepo.New(db)
	seed := app.NewSeedService(repo, nil)
	if _, err := seed.SeedAll(context.Background(), app.Snapshot{
		Rooms:        catalog.Rooms(),
		Locations:    catalog.Locations(),
		Destinations: catalog.Destinations(),
		Restaurants:  catalog.Restaurants(),
		Reservations: catalog.Reservations(),
	}, 4); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := startAPI(t, repo, nil)
	exercise(t, ts.URL)
}

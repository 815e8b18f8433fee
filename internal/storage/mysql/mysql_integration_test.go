//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
	mysqlrepo "napoleon_resorts/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Skipf("%s not set; export it (e.g. MIGRATIONS_DIR=$PWD/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB, dir string) {
	t.Helper()
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

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
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
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

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=napoleon",
		},
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
	return db
}

func TestRepo_MySQL_UpsertAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	rooms := catalog.Rooms()
	for _, rm := range rooms {
		if err := repo.UpsertRoom(ctx, rm); err != nil {
			t.Fatalf("UpsertRoom(%s): %v", rm.ID, err)
		}
	}
	for _, l := range catalog.Locations() {
		if err := repo.UpsertLocation(ctx, l); err != nil {
			t.Fatalf("UpsertLocation: %v", err)
		}
	}
	for _, d := range catalog.Destinations() {
		if err := repo.UpsertDestination(ctx, d); err != nil {
			t.Fatalf("UpsertDestination: %v", err)
		}
	}
	for _, rs := range catalog.Restaurants() {
		if err := repo.UpsertRestaurant(ctx, rs); err != nil {
			t.Fatalf("UpsertRestaurant: %v", err)
		}
	}
	for _, rv := range catalog.Reservations() {
		if err := repo.UpsertReservation(ctx, rv); err != nil {
			t.Fatalf("UpsertReservation: %v", err)
		}
	}

	gotRooms, err := repo.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(gotRooms) != len(rooms) {
		t.Fatalf("rooms: got %d want %d", len(gotRooms), len(rooms))
	}
	for i := range rooms {
		if gotRooms[i].ID != rooms[i].ID || gotRooms[i].Price != rooms[i].Price {
			t.Fatalf("room %d: got %+v want %+v", i, gotRooms[i], rooms[i])
		}
		if len(gotRooms[i].Amenities) != len(rooms[i].Amenities) {
			t.Fatalf("room %s amenities: got %v", rooms[i].ID, gotRooms[i].Amenities)
		}
	}

	// upsert keeps the row (and its position) but replaces the price
	changed := rooms[0]
	changed.Price = domain.Dollars(999)
	if err := repo.UpsertRoom(ctx, changed); err != nil {
		t.Fatalf("UpsertRoom again: %v", err)
	}
	got, err := repo.GetRoom(ctx, changed.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Price != domain.Dollars(999) {
		t.Fatalf("price after upsert: got %v", got.Price)
	}

	if _, err := repo.GetRoom(ctx, "no-such-room"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetRoom missing: got %v want ErrNotFound", err)
	}

	locs, err := repo.ListLocations(ctx)
	if err != nil || len(locs) != len(catalog.Locations()) {
		t.Fatalf("ListLocations: %d, %v", len(locs), err)
	}
	if locs[0].Value != catalog.Locations()[0].Value {
		t.Fatalf("locations out of seed order: first=%s", locs[0].Value)
	}

	dests, err := repo.ListDestinations(ctx)
	if err != nil || len(dests) != len(catalog.Destinations()) {
		t.Fatalf("ListDestinations: %d, %v", len(dests), err)
	}

	rests, err := repo.ListRestaurants(ctx)
	if err != nil || len(rests) != len(catalog.Restaurants()) {
		t.Fatalf("ListRestaurants: %d, %v", len(rests), err)
	}

	res, err := repo.ListReservations(ctx)
	if err != nil || len(res) != len(catalog.Reservations()) {
		t.Fatalf("ListReservations: %d, %v", len(res), err)
	}
	for _, rv := range res {
		if rv.TargetDate() == nil {
			t.Fatalf("reservation %s lost its date", rv.ID)
		}
	}
}

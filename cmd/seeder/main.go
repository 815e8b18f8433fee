package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/adapters/observability"
	redisad "napoleon_resorts/internal/adapters/redis"
	"napoleon_resorts/internal/app"
	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
	"napoleon_resorts/internal/shared"
	mysqlrepo "napoleon_resorts/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required to seed")
	}
	log.Info().Int("workers", cfg.Workers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	seed := app.NewSeedService(mysqlrepo.New(db), cache)
	start := time.Now()
	n, err := seed.SeedAll(ctx, app.Snapshot{
		Rooms:        catalog.Rooms(),
		Locations:    catalog.Locations(),
		Destinations: catalog.Destinations(),
		Restaurants:  catalog.Restaurants(),
		Reservations: catalog.Reservations(),
	}, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Int("written", n).Msg("seeding finished with errors")
	}
	log.Info().Int("written", n).Dur("took", time.Since(start)).Msg("seeding completed")
}

package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "MYSQL_DSN", "REDIS_ADDR", "SEED_WORKERS", "CACHE_TTL_SECONDS", "API_RPS", "RESORT_TZ"} {
		t.Setenv(k, "")
	}
	c := fromEnv()
	if c.AppEnv != "prod" || c.HTTPAddr != ":8080" || c.MySQLDSN != "" || c.RedisAddr != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.ResortTZ != time.UTC {
		t.Fatalf("default resort zone: %v", c.ResortTZ)
	}
	if c.Workers != 8 || c.CacheTTL != 900*time.Second || c.APIRPS != 5 {
		t.Fatalf("unexpected numeric defaults: %+v", c)
	}
}

func TestFromEnv_BadIntegerFallsBack(t *testing.T) {
	t.Setenv("SEED_WORKERS", "many")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	c := fromEnv()
	if c.Workers != 8 || c.CacheTTL != time.Minute {
		t.Fatalf("got workers=%d ttl=%v", c.Workers, c.CacheTTL)
	}
}

func TestFromEnv_ResortTZ(t *testing.T) {
	t.Setenv("RESORT_TZ", "America/Los_Angeles")
	if c := fromEnv(); c.ResortTZ.String() != "America/Los_Angeles" {
		t.Fatalf("got %v", c.ResortTZ)
	}
	t.Setenv("RESORT_TZ", "Mars/Olympus")
	if c := fromEnv(); c.ResortTZ != time.UTC {
		t.Fatalf("unknown zone should fall back to UTC, got %v", c.ResortTZ)
	}
}

func TestLoad_ReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_ADDR=cache:6379\nHTTP_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("REDIS_ADDR")
	})
	t.Setenv("HTTP_ADDR", ":7070")
	_ = os.Unsetenv("REDIS_ADDR")

	c := Load()
	if c.RedisAddr != "cache:6379" {
		t.Fatalf("expected REDIS_ADDR from .env, got %q", c.RedisAddr)
	}
	if c.HTTPAddr != ":7070" {
		t.Fatalf("environment should win over .env, got %q", c.HTTPAddr)
	}
}

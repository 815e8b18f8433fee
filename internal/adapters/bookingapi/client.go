// Package bookingapi is the HTTP client for the booking service's own /v1 API.
package bookingapi

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"napoleon_resorts/internal/adapters/observability"
	"napoleon_resorts/internal/domain"
)

const service = "booking_api"

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ProblemError is a problem+json answer the server gave for a request it rejected.
type ProblemError struct {
	Status int
	Title  string
	Detail string
}

func (e *ProblemError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("booking api %d: %s", e.Status, e.Title)
	}
	return fmt.Sprintf("booking api %d: %s: %s", e.Status, e.Title, e.Detail)
}

// Is lets callers match a 404 against domain.ErrNotFound.
func (e *ProblemError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

// ---- Public API ----

func stayValues(q domain.StayQuery) url.Values {
	v := url.Values{}
	if q.Destination != "" {
		v.Set("destination", q.Destination)
	}
	if q.CheckIn != nil {
		v.Set("check_in", q.CheckIn.Format(time.DateOnly))
	}
	if q.CheckOut != nil {
		v.Set("check_out", q.CheckOut.Format(time.DateOnly))
	}
	// always sent: the server decides whether the count is valid
	v.Set("guests", strconv.Itoa(q.Guests))
	return v
}

func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	var out []domain.Location
	return out, c.get(ctx, "locations", c.base+"/v1/locations", &out)
}

func (c *Client) SearchRooms(ctx context.Context, q domain.StayQuery) (domain.SearchResult, error) {
	var out domain.SearchResult
	return out, c.get(ctx, "rooms_search", c.base+"/v1/rooms/search?"+stayValues(q).Encode(), &out)
}

func (c *Client) QuoteRoom(ctx context.Context, roomID string, q domain.StayQuery) (domain.BookingSummary, error) {
	var out domain.BookingSummary
	u := fmt.Sprintf("%s/v1/rooms/%s/quote?%s", c.base, url.PathEscape(roomID), stayValues(q).Encode())
	return out, c.get(ctx, "rooms_quote", u, &out)
}

// ---- Internals ----

func problemFrom(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	pe := &ProblemError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	var p struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(b, &p) == nil && p.Title != "" {
		pe.Title, pe.Detail = p.Title, p.Detail
	} else {
		pe.Detail = strings.TrimSpace(string(b))
	}
	return pe
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "napoleon-quote/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(service, endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			lastErr = problemFrom(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			err := problemFrom(resp)
			resp.Body.Close()
			return err
		}
	}

	if lastErr == nil {
		lastErr = errors.New("booking api: no attempt succeeded")
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}

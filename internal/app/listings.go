package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"napoleon_resorts/internal/domain"
)

func matchesAny(v string) bool { return v == "" || v == domain.AnyValue }

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ListDestinations filters by name/state substring and region, then sorts.
// An unknown sort key keeps catalog order.
func (s *QueryService) ListDestinations(ctx context.Context, q domain.DestinationsQuery) ([]domain.Destination, error) {
	all, err := cached(ctx, s, KeyDestinations, s.repo.ListDestinations)
	if err != nil {
		return nil, err
	}
	search := strings.TrimSpace(q.Search)

	out := make([]domain.Destination, 0, len(all))
	for _, d := range all {
		if search != "" && !containsFold(d.Name, search) && !containsFold(d.State, search) {
			continue
		}
		if !matchesAny(q.Region) && d.Region != q.Region {
			continue
		}
		out = append(out, d)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = domain.SortByRating
	}
	switch sortBy {
	case domain.SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case domain.SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case domain.SortByRooms:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rooms > out[j].Rooms })
	}
	return out, nil
}

func (s *QueryService) ListRestaurants(ctx context.Context, q domain.RestaurantsQuery) ([]domain.Restaurant, error) {
	all, err := cached(ctx, s, KeyRestaurants, s.repo.ListRestaurants)
	if err != nil {
		return nil, err
	}
	search := strings.TrimSpace(q.Search)

	out := make([]domain.Restaurant, 0, len(all))
	for _, r := range all {
		if search != "" && !containsFold(r.Name, search) && !containsFold(r.Description, search) {
			continue
		}
		if !matchesAny(q.Cuisine) && r.Cuisine != q.Cuisine {
			continue
		}
		if !matchesAny(q.Location) && r.Location != q.Location {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// RestaurantLocations returns the distinct restaurant locations in first-seen order.
func (s *QueryService) RestaurantLocations(ctx context.Context) ([]string, error) {
	all, err := cached(ctx, s, KeyRestaurants, s.repo.ListRestaurants)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(all))
	out := []string{}
	for _, r := range all {
		if _, ok := seen[r.Location]; ok {
			continue
		}
		seen[r.Location] = struct{}{}
		out = append(out, r.Location)
	}
	return out, nil
}

func isUpcoming(r domain.Reservation, today time.Time) bool {
	t := r.TargetDate()
	if t == nil || r.Status == domain.StatusCancelled {
		return false
	}
	return !dayStart(*t).Before(today)
}

// dayStart maps the calendar day of t, read in t's own location, to UTC midnight so that
// days from different zones compare by date.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ListReservations returns the tab's reservations, most recent target date first, plus
// per-tab counts over the whole list. An unknown tab behaves like "all". "Today" is the
// calendar day of now in now's location.
func (s *QueryService) ListReservations(ctx context.Context, tab string, now time.Time) (domain.ReservationsView, error) {
	all, err := cached(ctx, s, KeyReservations, s.repo.ListReservations)
	if err != nil {
		return domain.ReservationsView{}, err
	}
	today := dayStart(now)

	view := domain.ReservationsView{Items: []domain.Reservation{}}
	for _, r := range all {
		up := isUpcoming(r, today)
		if up {
			view.UpcomingCount++
		}
		switch r.Type {
		case domain.ReservationHotel:
			view.HotelCount++
		case domain.ReservationRestaurant:
			view.RestaurantCount++
		}

		switch tab {
		case domain.TabHotel:
			if r.Type != domain.ReservationHotel {
				continue
			}
		case domain.TabRestaurant:
			if r.Type != domain.ReservationRestaurant {
				continue
			}
		case domain.TabUpcoming:
			if !up {
				continue
			}
		}
		view.Items = append(view.Items, r)
	}

	sort.SliceStable(view.Items, func(i, j int) bool {
		return view.Items[i].SortDate().After(view.Items[j].SortDate())
	})
	return view, nil
}

// MemberRewards assembles the loyalty dashboard. Progress is measured against the span
// between tiers and is 100 at the top tier.
func (s *QueryService) MemberRewards(ctx context.Context) (domain.RewardsView, error) {
	m, err := s.rewards.GetMember(ctx)
	if err != nil {
		return domain.RewardsView{}, err
	}
	tiers, err := s.rewards.ListTierBenefits(ctx)
	if err != nil {
		return domain.RewardsView{}, err
	}
	items, err := s.rewards.ListRewardItems(ctx)
	if err != nil {
		return domain.RewardsView{}, err
	}
	activity, err := s.rewards.ListActivity(ctx)
	if err != nil {
		return domain.RewardsView{}, err
	}
	offers, err := s.rewards.ListOffers(ctx)
	if err != nil {
		return domain.RewardsView{}, err
	}

	view := domain.RewardsView{Member: m, Catalog: items, Activity: activity, Offers: offers}
	byTier := make(map[domain.Tier]domain.TierBenefits, len(tiers))
	for _, t := range tiers {
		byTier[t.Tier] = t
	}
	view.Tier = byTier[m.Tier]
	if next, ok := nextTier(m.Tier); ok {
		if tb, ok := byTier[next]; ok {
			view.NextTier = &tb
		}
	}
	view.ProgressPercent = progress(m, view.NextTier != nil)
	return view, nil
}

func nextTier(t domain.Tier) (domain.Tier, bool) {
	for i, lt := range domain.TierLadder {
		if lt == t && i+1 < len(domain.TierLadder) {
			return domain.TierLadder[i+1], true
		}
	}
	return "", false
}

func progress(m domain.Member, hasNext bool) float64 {
	if !hasNext {
		return 100
	}
	p := float64(domain.PointsPerTier-m.PointsToNextTier) * 100 / domain.PointsPerTier
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

package domain

import "time"

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierLadder is ordered lowest to highest.
var TierLadder = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}

// PointsPerTier is the span of points between two consecutive tiers.
const PointsPerTier = 15000

type TierBenefits struct {
	Tier     Tier     `json:"tier"`
	Name     string   `json:"name"`
	Benefits []string `json:"benefits"`
}

type Member struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Tier             Tier   `json:"tier"`
	Points           int    `json:"points"`
	PointsToNextTier int    `json:"points_to_next_tier"`
	LifetimePoints   int    `json:"lifetime_points"`
	MemberSince      string `json:"member_since"`
	Visits           int    `json:"visits"`
	FavoriteProperty string `json:"favorite_property"`
}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // earned|redeemed|bonus
	Points      int       `json:"points"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Property    string    `json:"property"`
}

type RewardItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Category    string `json:"category"` // hotel|dining|spa|gaming
	Tier        Tier   `json:"tier"`
}

type Offer struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ValidUntil  time.Time `json:"valid_until"`
	Type        string    `json:"type"` // limited|tier
}

type RewardsView struct {
	Member          Member        `json:"member"`
	Tier            TierBenefits  `json:"tier"`
	NextTier        *TierBenefits `json:"next_tier,omitempty"`
	ProgressPercent float64       `json:"progress_percent"`
	Catalog         []RewardItem  `json:"catalog"`
	Activity        []Activity    `json:"activity"`
	Offers          []Offer       `json:"offers"`
}

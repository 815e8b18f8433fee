package memory

import (
	"context"

	"napoleon_resorts/internal/catalog"
	"napoleon_resorts/internal/domain"
)

// Rewards serves the demo member's loyalty account from the static catalog.
type Rewards struct{}

func (Rewards) GetMember(ctx context.Context) (domain.Member, error) {
	return catalog.Member(), nil
}

func (Rewards) ListTierBenefits(ctx context.Context) ([]domain.TierBenefits, error) {
	return catalog.TierBenefits(), nil
}

func (Rewards) ListRewardItems(ctx context.Context) ([]domain.RewardItem, error) {
	return catalog.RewardItems(), nil
}

func (Rewards) ListActivity(ctx context.Context) ([]domain.Activity, error) {
	return catalog.Activity(), nil
}

func (Rewards) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return catalog.Offers(), nil
}

package catalog

import "napoleon_resorts/internal/domain"

func TierBenefits() []domain.TierBenefits {
	return []domain.TierBenefits{
		{Tier: domain.TierBronze, Name: "Bronze Elite", Benefits: []string{
			"5% dining discount", "Priority check-in", "Free WiFi", "Birthday bonus",
		}},
		{Tier: domain.TierSilver, Name: "Silver Elite", Benefits: []string{
			"10% dining discount", "Room upgrades (based on availability)", "Late checkout",
			"Express valet", "Complimentary breakfast",
		}},
		{Tier: domain.TierGold, Name: "Gold Elite", Benefits: []string{
			"15% dining discount", "Guaranteed room upgrades", "VIP check-in",
			"Premium valet", "Spa discounts", "Event invitations",
		}},
		{Tier: domain.TierPlatinum, Name: "Platinum Elite", Benefits: []string{
			"20% dining discount", "Suite upgrades", "Personal concierge",
			"Free airport transfers", "Private gaming areas", "Exclusive events",
		}},
	}
}

func Member() domain.Member {
	return domain.Member{
		Name:             "John Smith",
		Email:            "john.smith@email.com",
		Tier:             domain.TierGold,
		Points:           12750,
		PointsToNextTier: 2250,
		LifetimePoints:   45300,
		MemberSince:      "January 2020",
		Visits:           28,
		FavoriteProperty: "Napoleon Las Vegas",
	}
}

func Activity() []domain.Activity {
	return []domain.Activity{
		{ID: "1", Type: "earned", Points: 450, Description: "Hotel stay at Napoleon Las Vegas", Date: *day("2024-02-15"), Property: "Las Vegas, NV"},
		{ID: "2", Type: "redeemed", Points: -200, Description: "Dining credit at Crown Steakhouse", Date: *day("2024-02-10"), Property: "Atlantic City, NJ"},
		{ID: "3", Type: "earned", Points: 180, Description: "Gaming activity", Date: *day("2024-02-08"), Property: "Las Vegas, NV"},
		{ID: "4", Type: "bonus", Points: 500, Description: "Elite tier bonus", Date: *day("2024-02-01"), Property: "Account Credit"},
	}
}

func RewardItems() []domain.RewardItem {
	return []domain.RewardItem{
		{ID: "1", Title: "Free Night Stay", Description: "One night accommodation at any Napoleon property", Points: 2500, Category: "hotel", Tier: domain.TierBronze},
		{ID: "2", Title: "$50 Dining Credit", Description: "Use at any Napoleon restaurant or bar", Points: 1000, Category: "dining", Tier: domain.TierBronze},
		{ID: "3", Title: "Spa Package", Description: "Relaxing spa treatment for two", Points: 1800, Category: "spa", Tier: domain.TierSilver},
		{ID: "4", Title: "VIP Gaming Experience", Description: "Private gaming session with refreshments", Points: 3000, Category: "gaming", Tier: domain.TierGold},
		{ID: "5", Title: "Suite Upgrade", Description: "Guaranteed suite upgrade on next stay", Points: 1500, Category: "hotel", Tier: domain.TierSilver},
		{ID: "6", Title: "Chef's Table Experience", Description: "Exclusive dining experience with our executive chef", Points: 4000, Category: "dining", Tier: domain.TierPlatinum},
	}
}

func Offers() []domain.Offer {
	return []domain.Offer{
		{ID: "1", Title: "Double Points Weekend", Description: "Earn 2x points on all activities this weekend", ValidUntil: *day("2024-03-01"), Type: "limited"},
		{ID: "2", Title: "Complimentary Breakfast", Description: "Free breakfast with any weekend stay", ValidUntil: *day("2024-03-15"), Type: "tier"},
		{ID: "3", Title: "25% Off Spa Services", Description: "Exclusive discount for Gold Elite members", ValidUntil: *day("2024-04-01"), Type: "tier"},
	}
}

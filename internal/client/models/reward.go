package models

// RewardCategory groups catalog rewards for filtering.
type RewardCategory string

const (
	RewardCategoryAll         RewardCategory = "all"
	RewardCategoryDiscounts   RewardCategory = "discounts"
	RewardCategoryProducts    RewardCategory = "products"
	RewardCategoryDonations   RewardCategory = "donations"
	RewardCategoryExperiences RewardCategory = "experiences"
)

// Reward is a redeemable catalog entry.
type Reward struct {
	ID            int
	Name          string
	Category      RewardCategory
	Points        int
	OriginalPrice string
	DiscountPrice string
	Description   string
}

// Achievement is a badge definition shown on the leaderboard view.
type Achievement struct {
	Name        string
	Description string
	Icon        string
}

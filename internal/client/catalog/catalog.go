// Package catalog holds the presentational data the views render: the
// reward catalog, the leaderboard snapshot and the achievement list. Every
// accessor returns a fresh copy.
package catalog

import "github.com/dmitrijs2005/ecorewards/internal/client/models"

var rewards = []models.Reward{
	{ID: 1, Name: "Eco-Friendly Water Bottle", Category: models.RewardCategoryProducts, Points: 200, OriginalPrice: "$25", DiscountPrice: "Free", Description: "Reusable stainless steel water bottle"},
	{ID: 2, Name: "20% Off Organic Store", Category: models.RewardCategoryDiscounts, Points: 150, OriginalPrice: "$50", DiscountPrice: "$40", Description: "Discount voucher for organic products"},
	{ID: 3, Name: "Tree Planting Donation", Category: models.RewardCategoryDonations, Points: 100, OriginalPrice: "$10", DiscountPrice: "Free", Description: "Plant a tree in your name"},
	{ID: 4, Name: "Bamboo Toothbrush Set", Category: models.RewardCategoryProducts, Points: 120, OriginalPrice: "$15", DiscountPrice: "Free", Description: "Set of 4 biodegradable toothbrushes"},
	{ID: 5, Name: "30% Off Recycling Center", Category: models.RewardCategoryDiscounts, Points: 180, OriginalPrice: "$100", DiscountPrice: "$70", Description: "Discount on recycling services"},
	{ID: 6, Name: "Ocean Cleanup Donation", Category: models.RewardCategoryDonations, Points: 250, OriginalPrice: "$25", DiscountPrice: "Free", Description: "Support ocean cleanup initiatives"},
	{ID: 7, Name: "Eco Workshop Experience", Category: models.RewardCategoryExperiences, Points: 300, OriginalPrice: "$50", DiscountPrice: "Free", Description: "Learn sustainable living practices"},
	{ID: 8, Name: "Solar Panel Discount", Category: models.RewardCategoryDiscounts, Points: 500, OriginalPrice: "$2000", DiscountPrice: "$1800", Description: "15% off solar panel installation"},
}

// RewardCategories lists the filter options in display order.
var RewardCategories = []models.RewardCategory{
	models.RewardCategoryAll,
	models.RewardCategoryDiscounts,
	models.RewardCategoryProducts,
	models.RewardCategoryDonations,
	models.RewardCategoryExperiences,
}

// Rewards returns the catalog entries in category c; "all" and "" return
// everything.
func Rewards(c models.RewardCategory) []models.Reward {
	out := make([]models.Reward, 0, len(rewards))
	for _, r := range rewards {
		if c == "" || c == models.RewardCategoryAll || r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// RewardByID looks a reward up by id.
func RewardByID(id int) (models.Reward, bool) {
	for _, r := range rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}

var leaderboard = []models.LeaderboardEntry{
	{ID: 1, Name: "Sarah Green", Points: 2850, WasteSegregated: 89, Streak: 15, Achievements: []string{"Master Recycler", "Perfect Week", "Eco Champion"}},
	{ID: 2, Name: "Mike Eco", Points: 2670, WasteSegregated: 76, Streak: 12, Achievements: []string{"Week Warrior", "Plastic Master", "Green Thumb"}},
	{ID: 3, Name: "Lisa Waste", Points: 2450, WasteSegregated: 67, Streak: 10, Achievements: []string{"First Scan", "Perfect Day", "Recycling Pro"}},
	{ID: 4, Name: "John Clean", Points: 2230, WasteSegregated: 58, Streak: 8, Achievements: []string{"Week Warrior", "Organic Expert"}},
	{ID: 5, Name: "Emma Sort", Points: 2010, WasteSegregated: 52, Streak: 7, Achievements: []string{"First Scan", "Perfect Day"}},
	{ID: 6, Name: "David Recycle", Points: 1890, WasteSegregated: 48, Streak: 6, Achievements: []string{"Week Warrior"}},
	{ID: 7, Name: "Anna Green", Points: 1670, WasteSegregated: 43, Streak: 5, Achievements: []string{"First Scan"}},
	{ID: 8, Name: "Tom Waste", Points: 1450, WasteSegregated: 38, Streak: 4, Achievements: []string{"Perfect Day"}},
	{ID: 9, Name: "Maria Sort", Points: 1230, WasteSegregated: 32, Streak: 3, Achievements: []string{"First Scan"}},
	{ID: 10, Name: "Carl Eco", Points: 1010, WasteSegregated: 26, Streak: 2, Achievements: []string{}},
}

// Leaderboard returns the community snapshot ordered by points descending.
func Leaderboard() []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, len(leaderboard))
	for i, e := range leaderboard {
		e.Achievements = append([]string(nil), e.Achievements...)
		out[i] = e
	}
	return out
}

var achievements = []models.Achievement{
	{Name: "First Scan", Description: "Complete your first waste scan", Icon: "🎯"},
	{Name: "Week Warrior", Description: "Scan waste for 7 consecutive days", Icon: "🔥"},
	{Name: "Plastic Master", Description: "Correctly classify 50 plastic items", Icon: "🥤"},
	{Name: "Eco Champion", Description: "Reach 1000 total points", Icon: "🏆"},
	{Name: "Perfect Day", Description: "Get 100% accuracy in a day", Icon: "⭐"},
	{Name: "Recycling Pro", Description: "Classify 100 organic items", Icon: "🍃"},
	{Name: "Hazardous Hero", Description: "Correctly handle 10 hazardous items", Icon: "⚠️"},
	{Name: "Community Leader", Description: "Help 10 other users", Icon: "🤝"},
}

func Achievements() []models.Achievement {
	return append([]models.Achievement(nil), achievements...)
}

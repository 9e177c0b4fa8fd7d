package models

// LeaderboardEntry is a row of the read-only leaderboard snapshot.
type LeaderboardEntry struct {
	ID              int
	Name            string
	Points          int
	WasteSegregated int
	Streak          int
	Achievements    []string
}

// DashboardStats are the four headline numbers shown on the dashboard and
// the profile view.
type DashboardStats struct {
	Points          int
	ItemsSegregated int
	Level           int
	Streak          int
}

// TypeCount is one row of the waste-type breakdown.
type TypeCount struct {
	Type       string
	Count      int
	Percentage int
}

package ledger

import (
	"slices"
	"sort"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

func (l *Ledger) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Ledger) IsAuthenticated() bool {
	return l.State() == Authenticated
}

// Profile returns a copy of the live profile.
func (l *Ledger) Profile() models.Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile.Clone()
}

func (l *Ledger) CurrentLevel() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.LevelForPoints(l.profile.Points)
}

// PointsToNextLevel is how many points are missing to reach the next level.
func (l *Ledger) PointsToNextLevel() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.LevelStep - l.profile.Points%models.LevelStep
}

func (l *Ledger) CanAfford(cost int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile.Points >= cost
}

func (l *Ledger) HasBadge(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.profile.Badges, name)
}

func (l *Ledger) Stats() models.DashboardStats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.DashboardStats{
		Points:          l.profile.Points,
		ItemsSegregated: l.profile.TotalItemsSegregated,
		Level:           models.LevelForPoints(l.profile.Points),
		Streak:          l.profile.Streak,
	}
}

// History returns every event, newest first.
func (l *Ledger) History() []models.WasteEvent {
	return l.RecentHistory(-1)
}

// RecentHistory returns at most n events, newest first. A negative n means
// no limit.
func (l *Ledger) RecentHistory(n int) []models.WasteEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := len(l.events)
	if n < 0 || n > total {
		n = total
	}
	out := make([]models.WasteEvent, 0, n)
	for i := total - 1; i >= total-n; i-- {
		out = append(out, l.events[i])
	}
	return out
}

// Accuracy is the share of correct events in the history, 0 when empty.
func (l *Ledger) Accuracy() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.events) == 0 {
		return 0
	}
	correct := 0
	for _, e := range l.events {
		if e.WasCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(l.events))
}

// Breakdown counts history events per declared type. Known categories come
// first in their display order, then any other type in the order it was
// first recorded. Percentages are rounded to the nearest integer.
func (l *Ledger) Breakdown() []models.TypeCount {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := map[string]int{}
	var extra []string
	for _, e := range l.events {
		if _, seen := counts[e.DeclaredType]; !seen && !waste.Type(e.DeclaredType).Known() {
			extra = append(extra, e.DeclaredType)
		}
		counts[e.DeclaredType]++
	}

	order := make([]string, 0, len(counts))
	for _, t := range waste.Types {
		if counts[string(t)] > 0 {
			order = append(order, string(t))
		}
	}
	order = append(order, extra...)

	total := len(l.events)
	out := make([]models.TypeCount, 0, len(order))
	for _, t := range order {
		c := counts[t]
		out = append(out, models.TypeCount{
			Type:       t,
			Count:      c,
			Percentage: (c*100 + total/2) / total,
		})
	}
	return out
}

// Standing is a leaderboard row with its 1-based position.
type Standing struct {
	Position int
	Entry    models.LeaderboardEntry
	Self     bool
}

// Standings merges the live profile into snapshot and orders the result by
// points, highest first. The live profile is placed after every snapshot
// entry before the stable sort, so it loses ties. Snapshot ids are not
// matched against the profile id.
func (l *Ledger) Standings(snapshot []models.LeaderboardEntry) []Standing {
	l.mu.RLock()
	p := l.profile
	self := models.LeaderboardEntry{
		ID:              p.ID,
		Name:            p.Name,
		Points:          p.Points,
		WasteSegregated: p.TotalItemsSegregated,
		Streak:          p.Streak,
		Achievements:    slices.Clone(p.Badges),
	}
	l.mu.RUnlock()

	rows := make([]Standing, 0, len(snapshot)+1)
	for _, e := range snapshot {
		rows = append(rows, Standing{Entry: e})
	}
	rows = append(rows, Standing{Entry: self, Self: true})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Entry.Points > rows[j].Entry.Points
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// Rank is the 1-based position of the live profile in Standings.
func (l *Ledger) Rank(snapshot []models.LeaderboardEntry) int {
	for _, s := range l.Standings(snapshot) {
		if s.Self {
			return s.Position
		}
	}
	return 0
}

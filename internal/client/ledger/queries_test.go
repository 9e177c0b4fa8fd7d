package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/client/catalog"
	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentHistory(t *testing.T) {
	l := newTestLedger()

	recent := l.RecentHistory(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "Plastic Bottle", recent[0].Name)
	assert.Equal(t, "Old Phone", recent[2].Name)

	assert.Len(t, l.RecentHistory(100), 5)
	assert.Empty(t, l.RecentHistory(0))
	assert.Len(t, l.RecentHistory(-1), 5)
}

func TestRecentHistory_NewestFirstAfterRecording(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	l.RecordWasteEvent(ctx, models.WasteCandidate{Name: "first", DeclaredType: "organic"})
	l.RecordWasteEvent(ctx, models.WasteCandidate{Name: "second", DeclaredType: "organic"})

	recent := l.RecentHistory(3)
	assert.Equal(t, "second", recent[0].Name)
	assert.Equal(t, "first", recent[1].Name)
	assert.Equal(t, "Plastic Bottle", recent[2].Name)
}

func TestStats(t *testing.T) {
	l := newTestLedger()
	l.UpdateStreak(context.Background(), 9)

	want := models.DashboardStats{Points: 1250, ItemsSegregated: 45, Level: 3, Streak: 9}
	if diff := cmp.Diff(want, l.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestPointsToNextLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 500},
		{1250, 250},
		{499, 1},
		{500, 500},
	}
	for _, tt := range tests {
		l := newTestLedger(WithState(emptyProfile(tt.points), nil))
		assert.Equal(t, tt.want, l.PointsToNextLevel(), "points=%d", tt.points)
	}
}

func TestCanAfford(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(300), nil))

	assert.True(t, l.CanAfford(300))
	assert.True(t, l.CanAfford(0))
	assert.False(t, l.CanAfford(301))
}

func TestAccuracy(t *testing.T) {
	assert.InDelta(t, 0.8, newTestLedger().Accuracy(), 1e-9)
	assert.Zero(t, newTestLedger(WithState(emptyProfile(0), nil)).Accuracy())
}

func TestBreakdown(t *testing.T) {
	l := newTestLedger()

	want := []models.TypeCount{
		{Type: "organic", Count: 2, Percentage: 40},
		{Type: "plastic", Count: 1, Percentage: 20},
		{Type: "e-waste", Count: 1, Percentage: 20},
		{Type: "hazardous", Count: 1, Percentage: 20},
	}
	if diff := cmp.Diff(want, l.Breakdown()); diff != "" {
		t.Errorf("Breakdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakdown_UnknownTypesLast(t *testing.T) {
	history := []models.WasteEvent{
		{Name: "c", DeclaredType: "plastic", Timestamp: time.Now()},
		{Name: "b", DeclaredType: "metal"},
		{Name: "a", DeclaredType: "glass"},
	}
	l := newTestLedger(WithState(emptyProfile(0), history))

	got := l.Breakdown()
	require.Len(t, got, 3)
	assert.Equal(t, "plastic", got[0].Type)
	assert.Equal(t, "glass", got[1].Type)
	assert.Equal(t, "metal", got[2].Type)
	assert.Equal(t, 33, got[0].Percentage)
}

func TestBreakdown_Empty(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(0), nil))
	assert.Empty(t, l.Breakdown())
}

func TestRank(t *testing.T) {
	snapshot := []models.LeaderboardEntry{
		{ID: 10, Name: "A", Points: 2000},
		{ID: 11, Name: "B", Points: 1250},
		{ID: 12, Name: "C", Points: 900},
	}

	t.Run("ties lose to snapshot entries", func(t *testing.T) {
		l := newTestLedger()
		assert.Equal(t, 3, l.Rank(snapshot))
	})

	t.Run("above everyone", func(t *testing.T) {
		l := newTestLedger(WithState(emptyProfile(5000), nil))
		assert.Equal(t, 1, l.Rank(snapshot))
	})

	t.Run("below everyone", func(t *testing.T) {
		l := newTestLedger(WithState(emptyProfile(0), nil))
		assert.Equal(t, 4, l.Rank(snapshot))
	})

	t.Run("empty snapshot", func(t *testing.T) {
		assert.Equal(t, 1, newTestLedger().Rank(nil))
	})
}

func TestStandings_DefaultSnapshot(t *testing.T) {
	l := newTestLedger()
	snapshot := catalog.Leaderboard()

	rows := l.Standings(snapshot)

	require.Len(t, rows, len(snapshot)+1)
	assert.Equal(t, 9, l.Rank(snapshot))
	selfCount := 0
	for i, r := range rows {
		assert.Equal(t, i+1, r.Position)
		if i > 0 {
			assert.GreaterOrEqual(t, rows[i-1].Entry.Points, r.Entry.Points)
		}
		if r.Self {
			selfCount++
			assert.Equal(t, "Eco Warrior", r.Entry.Name)
			assert.Equal(t, 1250, r.Entry.Points)
		}
	}
	assert.Equal(t, 1, selfCount)
	assert.Equal(t, snapshot, catalog.Leaderboard(), "snapshot must not be mutated")
}

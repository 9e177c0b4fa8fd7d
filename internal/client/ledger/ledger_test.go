package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	creds   *models.Credentials
	saved   int
	cleared int
	loadErr error
	saveErr error
}

func (f *fakeStore) Load(ctx context.Context) (*models.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.creds, nil
}

func (f *fakeStore) Save(ctx context.Context, c models.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.creds = &c
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	f.creds = nil
	return nil
}

var fixedNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestLedger(opts ...Option) *Ledger {
	base := []Option{WithClock(func() time.Time { return fixedNow })}
	return New(append(base, opts...)...)
}

func emptyProfile(points int) models.Profile {
	return models.Profile{ID: 1, Name: "Tester", Points: points}
}

func TestNew_Defaults(t *testing.T) {
	l := newTestLedger()

	p := l.Profile()
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Eco Warrior", p.Name)
	assert.Equal(t, 1250, p.Points)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 7, p.Streak)
	assert.Equal(t, 45, p.TotalItemsSegregated)
	assert.Equal(t, []string{"First Scan", "Week Warrior", "Plastic Master"}, p.Badges)
	assert.True(t, p.Credentials.Empty())
	assert.Equal(t, Anonymous, l.State())

	h := l.History()
	require.Len(t, h, 5)
	names := make([]string, 0, len(h))
	for _, e := range h {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Plastic Bottle", "Apple Core", "Old Phone", "Battery", "Paper"}, names)
	assert.Equal(t, "2024-01-15", h[0].Date())
	assert.Equal(t, "2024-01-11", h[4].Date())

	battery := h[3]
	assert.False(t, battery.WasCorrect)
	assert.Equal(t, 0, battery.PointsAwarded)
}

func TestNew_WithStateRecomputesLevel(t *testing.T) {
	p := emptyProfile(999)
	p.Level = 42
	l := newTestLedger(WithState(p, nil))

	assert.Equal(t, 2, l.Profile().Level)
	assert.Empty(t, l.History())
}

func TestRecordWasteEvent_Correct(t *testing.T) {
	l := newTestLedger()

	e := l.RecordWasteEvent(context.Background(), models.WasteCandidate{
		Name: "Battery", DeclaredType: "hazardous", Points: 30, WasCorrect: true,
	})

	assert.Equal(t, 30, e.PointsAwarded)
	assert.Equal(t, fixedNow, e.Timestamp)
	assert.NotEqual(t, uuid.Nil, e.ID)

	p := l.Profile()
	assert.Equal(t, 1280, p.Points)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 46, p.TotalItemsSegregated)

	h := l.History()
	require.Len(t, h, 6)
	assert.Equal(t, e, h[0])
}

func TestRecordWasteEvent_Incorrect(t *testing.T) {
	l := newTestLedger()

	e := l.RecordWasteEvent(context.Background(), models.WasteCandidate{
		Name: "Old Phone", DeclaredType: "plastic", Points: 25, WasCorrect: false,
	})

	assert.Equal(t, 0, e.PointsAwarded)
	assert.False(t, e.WasCorrect)
	p := l.Profile()
	assert.Equal(t, 1250, p.Points)
	assert.Equal(t, 46, p.TotalItemsSegregated)
	assert.Equal(t, e, l.History()[0])
}

func TestRecordWasteEvent_NegativePointsClamp(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(10), nil))

	e := l.RecordWasteEvent(context.Background(), models.WasteCandidate{
		Name: "Paper", DeclaredType: "organic", Points: -50, WasCorrect: true,
	})

	assert.Equal(t, 0, e.PointsAwarded)
	assert.Equal(t, 10, l.Profile().Points)
}

func TestRecordWasteEvent_CrossesLevel(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(495), nil))

	l.RecordWasteEvent(context.Background(), models.WasteCandidate{
		Name: "Paper", DeclaredType: "organic", Points: 10, WasCorrect: true,
	})

	assert.Equal(t, 505, l.Profile().Points)
	assert.Equal(t, 2, l.CurrentLevel())
	assert.Equal(t, 2, l.Profile().Level)
}

func TestRecordWasteEvent_IDsAreUniqueAndOrdered(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(0), nil))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		l.RecordWasteEvent(ctx, models.WasteCandidate{Name: fmt.Sprint(i), DeclaredType: "organic", Points: 1, WasCorrect: true})
	}

	h := l.History()
	seen := map[uuid.UUID]bool{}
	for i, e := range h {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		if i > 0 {
			assert.Less(t, e.ID.String(), h[i-1].ID.String(), "ids must be time ordered")
		}
	}
}

func TestRecordWasteEvent_IDGeneratorFailureFallsBack(t *testing.T) {
	l := newTestLedger(
		WithState(emptyProfile(0), nil),
		WithIDGenerator(func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy") }),
	)

	e := l.RecordWasteEvent(context.Background(), models.WasteCandidate{Name: "x", DeclaredType: "organic"})
	assert.NotEqual(t, uuid.Nil, e.ID)
}

func TestMixedSequence_KeepsInvariants(t *testing.T) {
	type step struct {
		record *models.WasteCandidate
		redeem int
	}
	rec := func(points int, correct bool) step {
		return step{record: &models.WasteCandidate{Name: "item", DeclaredType: "plastic", Points: points, WasCorrect: correct}}
	}
	steps := []step{
		rec(15, true),
		rec(30, false),
		rec(250, true),
		{redeem: 100},
		rec(400, true),
		rec(-20, true),
		{redeem: 10000},
		rec(25, true),
		rec(10, false),
		rec(499, true),
		{redeem: 24},
		rec(500, true),
	}

	ctx := context.Background()
	l := newTestLedger(WithState(emptyProfile(0), nil))

	calls, earned, spent, wantPoints := 0, 0, 0, 0
	for i, s := range steps {
		if s.record != nil {
			e := l.RecordWasteEvent(ctx, *s.record)
			calls++
			earned += e.PointsAwarded
			wantPoints += e.PointsAwarded
			if !s.record.WasCorrect {
				require.Zero(t, e.PointsAwarded, "step %d", i)
			}
		} else {
			l.RedeemReward(ctx, s.redeem)
			spent += min(s.redeem, wantPoints)
			wantPoints = max(0, wantPoints-s.redeem)
		}

		p := l.Profile()
		require.GreaterOrEqual(t, p.Points, 0, "step %d", i)
		require.Equal(t, p.Points/500+1, p.Level, "step %d", i)
		require.Equal(t, calls, p.TotalItemsSegregated, "step %d", i)
		require.Equal(t, wantPoints, p.Points, "step %d", i)
		require.Equal(t, earned-spent, p.Points, "step %d", i)

		h := l.History()
		require.Len(t, h, calls, "step %d", i)
		sum := 0
		for _, e := range h {
			sum += e.PointsAwarded
		}
		require.Equal(t, earned, sum, "step %d", i)
	}
}

func TestRedeemReward(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		cost      int
		want      int
		wantLevel int
	}{
		{name: "affordable", points: 1250, cost: 300, want: 950, wantLevel: 2},
		{name: "exact", points: 500, cost: 500, want: 0, wantLevel: 1},
		{name: "clamps at zero", points: 120, cost: 200, want: 0, wantLevel: 1},
		{name: "negative cost ignored", points: 120, cost: -50, want: 120, wantLevel: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(WithState(emptyProfile(tt.points), nil))

			l.RedeemReward(context.Background(), tt.cost)

			p := l.Profile()
			assert.Equal(t, tt.want, p.Points)
			assert.Equal(t, tt.wantLevel, p.Level)
		})
	}
}

func TestRedeemReward_LeavesHistory(t *testing.T) {
	l := newTestLedger()
	before := l.History()

	l.RedeemReward(context.Background(), 100)

	assert.Equal(t, before, l.History())
	assert.Equal(t, 45, l.Profile().TotalItemsSegregated)
}

func TestUpdateStreak(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	l.UpdateStreak(ctx, 12)
	assert.Equal(t, 12, l.Profile().Streak)

	l.UpdateStreak(ctx, 0)
	assert.Equal(t, 0, l.Profile().Streak)

	l.UpdateStreak(ctx, -3)
	assert.Equal(t, 0, l.Profile().Streak)
}

func TestAddBadge_KeepsDuplicates(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	l.AddBadge(ctx, "Recycler")
	l.AddBadge(ctx, "Recycler")

	assert.Equal(t,
		[]string{"First Scan", "Week Warrior", "Plastic Master", "Recycler", "Recycler"},
		l.Profile().Badges)
	assert.True(t, l.HasBadge("Recycler"))
	assert.False(t, l.HasBadge("Unknown"))
}

func TestLoginLogout(t *testing.T) {
	store := &fakeStore{}
	l := newTestLedger(WithSessionStore(store))
	ctx := context.Background()

	l.Login(ctx, "a@b.c", "pw")

	require.True(t, l.IsAuthenticated())
	assert.Equal(t, models.Credentials{Email: "a@b.c", Password: "pw"}, l.Profile().Credentials)
	require.NotNil(t, store.creds)
	assert.Equal(t, "a@b.c", store.creds.Email)

	l.RecordWasteEvent(ctx, models.WasteCandidate{Name: "Paper", DeclaredType: "organic", Points: 10, WasCorrect: true})
	l.Logout(ctx)

	assert.Equal(t, Anonymous, l.State())
	assert.True(t, l.Profile().Credentials.Empty())
	assert.Nil(t, store.creds)
	assert.Equal(t, 1, store.cleared)

	p := l.Profile()
	assert.Equal(t, 1260, p.Points)
	assert.Equal(t, 46, p.TotalItemsSegregated)
	assert.Len(t, l.History(), 6)
}

func TestLogin_StoreFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	l := newTestLedger(WithSessionStore(store))

	l.Login(context.Background(), "a@b.c", "pw")

	assert.True(t, l.IsAuthenticated())
	assert.Equal(t, 1, store.saved)
}

func TestLogin_WithoutStore(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	l.Login(ctx, "a@b.c", "pw")
	assert.True(t, l.IsAuthenticated())
	l.Logout(ctx)
	assert.False(t, l.IsAuthenticated())
	l.Restore(ctx)
	assert.False(t, l.IsAuthenticated())
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("stored credentials", func(t *testing.T) {
		store := &fakeStore{creds: &models.Credentials{Email: "x@y.z", Password: "secret"}}
		l := newTestLedger(WithSessionStore(store))

		l.Restore(ctx)

		assert.True(t, l.IsAuthenticated())
		assert.Equal(t, "x@y.z", l.Profile().Credentials.Email)
		assert.Equal(t, 1250, l.Profile().Points)
	})

	t.Run("nothing stored", func(t *testing.T) {
		l := newTestLedger(WithSessionStore(&fakeStore{}))
		l.Restore(ctx)
		assert.False(t, l.IsAuthenticated())
	})

	t.Run("empty credentials", func(t *testing.T) {
		l := newTestLedger(WithSessionStore(&fakeStore{creds: &models.Credentials{}}))
		l.Restore(ctx)
		assert.False(t, l.IsAuthenticated())
	})

	t.Run("load error", func(t *testing.T) {
		l := newTestLedger(WithSessionStore(&fakeStore{loadErr: errors.New("corrupt")}))
		l.Restore(ctx)
		assert.False(t, l.IsAuthenticated())
	})
}

func TestProfile_ReturnsCopy(t *testing.T) {
	l := newTestLedger()

	p := l.Profile()
	p.Badges[0] = "tampered"
	p.Points = 0

	assert.Equal(t, "First Scan", l.Profile().Badges[0])
	assert.Equal(t, 1250, l.Profile().Points)
}

func TestConcurrentRecording(t *testing.T) {
	l := newTestLedger(WithState(emptyProfile(0), nil))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RecordWasteEvent(ctx, models.WasteCandidate{Name: "Paper", DeclaredType: "organic", Points: 10, WasCorrect: true})
			_ = l.Stats()
		}()
	}
	wg.Wait()

	p := l.Profile()
	assert.Equal(t, 500, p.Points)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 50, p.TotalItemsSegregated)
	assert.Len(t, l.History(), 50)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}

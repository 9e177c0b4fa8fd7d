// Package ledger owns the user's gamification state: points, level, streak,
// badges, the item counter and the append-only waste history.
//
// The application root constructs one Ledger and hands the same pointer to
// every view. Mutations are a closed set of named operations, each keeping
// the invariants below; read-only figures are derived here so every view
// computes them the same way.
//
//   - points never go negative;
//   - level is floor(points/500)+1 after every mutation;
//   - history only grows, newest entry first, entries never change;
//   - every recorded event adds exactly one to TotalItemsSegregated.
//
// Session credentials are mirrored to a SessionStore. Store writes are best
// effort: failures are logged and never surface to the caller.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/google/uuid"
)

// State is the session state of the ledger.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// SessionStore persists the credentials of the current session. Load
// returns (nil, nil) when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context) (*models.Credentials, error)
	Save(ctx context.Context, c models.Credentials) error
	Clear(ctx context.Context) error
}

type Ledger struct {
	mu sync.RWMutex

	state   State
	profile models.Profile
	// events in insertion order; views read them reversed.
	events []models.WasteEvent

	store  SessionStore
	logger logging.Logger
	now    func() time.Time
	newID  func() (uuid.UUID, error)
}

type Option func(*Ledger)

func WithSessionStore(s SessionStore) Option {
	return func(l *Ledger) { l.store = s }
}

func WithLogger(lg logging.Logger) Option {
	return func(l *Ledger) { l.logger = lg }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator replaces the UUIDv7 generator used for event ids.
func WithIDGenerator(gen func() (uuid.UUID, error)) Option {
	return func(l *Ledger) { l.newID = gen }
}

// WithState starts the ledger from profile and history (newest first)
// instead of the built-in demo user. The level is recomputed from points.
func WithState(profile models.Profile, history []models.WasteEvent) Option {
	return func(l *Ledger) {
		l.profile = profile.Clone()
		l.events = make([]models.WasteEvent, len(history))
		for i, e := range history {
			l.events[len(history)-1-i] = e
		}
	}
}

// New builds a ledger for the built-in demo user in the Anonymous state.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		logger: logging.Nop(),
		now:    time.Now,
		newID:  uuid.NewV7,
	}
	l.profile = DefaultProfile()
	for _, opt := range opts {
		opt(l)
	}
	if l.events == nil {
		l.events = l.seedHistory()
	}
	l.profile.Points = max(0, l.profile.Points)
	l.profile.Level = models.LevelForPoints(l.profile.Points)
	l.logger = l.logger.With("module", "ledger")
	return l
}

func (l *Ledger) nextID() uuid.UUID {
	id, err := l.newID()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Login moves the session to Authenticated and remembers the credential
// pair. Credentials are not checked; callers reject empty fields.
func (l *Ledger) Login(ctx context.Context, email, password string) {
	creds := models.Credentials{Email: email, Password: password}

	l.mu.Lock()
	l.state = Authenticated
	l.profile.Credentials = creds
	l.mu.Unlock()

	l.logger.Info(ctx, "session started", "email", email)

	if l.store == nil {
		return
	}
	if err := l.store.Save(ctx, creds); err != nil {
		l.logger.Warn(ctx, "session not persisted", "error", err)
	}
}

// Logout moves the session to Anonymous and forgets the credentials.
// Points, history, streak and badges are kept.
func (l *Ledger) Logout(ctx context.Context) {
	l.mu.Lock()
	l.state = Anonymous
	l.profile.Credentials = models.Credentials{}
	l.mu.Unlock()

	l.logger.Info(ctx, "session ended")

	if l.store == nil {
		return
	}
	if err := l.store.Clear(ctx); err != nil {
		l.logger.Warn(ctx, "stored session not cleared", "error", err)
	}
}

// Restore logs in with the stored credentials, if any. Only the session is
// restored; progression always starts from the ledger's initial state.
func (l *Ledger) Restore(ctx context.Context) {
	if l.store == nil {
		return
	}
	creds, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Warn(ctx, "stored session unreadable", "error", err)
		return
	}
	if creds == nil || creds.Empty() {
		return
	}
	l.Login(ctx, creds.Email, creds.Password)
}

// RecordWasteEvent appends a confirmed classification. Incorrect answers
// award nothing but still count as a segregated item.
func (l *Ledger) RecordWasteEvent(ctx context.Context, c models.WasteCandidate) models.WasteEvent {
	awarded := 0
	if c.WasCorrect {
		awarded = max(0, c.Points)
	}

	l.mu.Lock()
	e := models.WasteEvent{
		ID:            l.nextID(),
		Name:          c.Name,
		DeclaredType:  c.DeclaredType,
		PointsAwarded: awarded,
		Timestamp:     l.now(),
		WasCorrect:    c.WasCorrect,
	}
	l.events = append(l.events, e)
	l.profile.TotalItemsSegregated++
	l.setPoints(l.profile.Points + awarded)
	points := l.profile.Points
	l.mu.Unlock()

	l.logger.Debug(ctx, "waste event recorded",
		"name", e.Name, "type", e.DeclaredType, "correct", e.WasCorrect,
		"awarded", awarded, "points", points)

	return e
}

// RedeemReward deducts cost, clamping the balance at zero. It never fails:
// callers check affordability first to tell the user why a reward is out of
// reach.
func (l *Ledger) RedeemReward(ctx context.Context, cost int) {
	cost = max(0, cost)

	l.mu.Lock()
	l.setPoints(max(0, l.profile.Points-cost))
	points := l.profile.Points
	l.mu.Unlock()

	l.logger.Debug(ctx, "reward redeemed", "cost", cost, "points", points)
}

// UpdateStreak overwrites the streak. Negative values are stored as 0.
func (l *Ledger) UpdateStreak(ctx context.Context, streak int) {
	l.mu.Lock()
	l.profile.Streak = max(0, streak)
	l.mu.Unlock()
}

// AddBadge appends name to the badge list; duplicates are kept.
func (l *Ledger) AddBadge(ctx context.Context, name string) {
	l.mu.Lock()
	l.profile.Badges = append(l.profile.Badges, name)
	l.mu.Unlock()

	l.logger.Debug(ctx, "badge added", "badge", name)
}

// setPoints is the only writer of Points and Level. Callers hold mu.
func (l *Ledger) setPoints(points int) {
	l.profile.Points = points
	l.profile.Level = models.LevelForPoints(points)
}

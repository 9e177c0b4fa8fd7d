// Package models defines the client-side progression data: the user
// profile, waste events and leaderboard entries.
package models

import (
	"time"

	"github.com/google/uuid"
)

// LevelStep is the number of points per level.
const LevelStep = 500

// LevelForPoints is floor(points/LevelStep)+1; negative balances count as 0.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/LevelStep + 1
}

// Credentials is the session credential pair. It is a persistence key only,
// never verified against anything.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Empty() bool {
	return c.Email == "" && c.Password == ""
}

// Profile is a snapshot of the user's gamification state. Level is always
// derived from Points.
type Profile struct {
	ID                   int
	Name                 string
	AvatarGlyph          string
	Points               int
	Level                int
	Streak               int
	TotalItemsSegregated int
	Badges               []string
	Credentials          Credentials
}

// Clone returns a copy that shares no slices with p.
func (p Profile) Clone() Profile {
	p.Badges = append([]string(nil), p.Badges...)
	return p
}

// WasteEvent is one confirmed classification. Events are immutable once
// recorded.
type WasteEvent struct {
	ID            uuid.UUID
	Name          string
	DeclaredType  string
	PointsAwarded int
	Timestamp     time.Time
	WasCorrect    bool
}

// Date is the event day in YYYY-MM-DD form.
func (e WasteEvent) Date() string {
	return e.Timestamp.Format(time.DateOnly)
}

// WasteCandidate is what the scanner submits after the user confirms a
// classification.
type WasteCandidate struct {
	Name         string
	DeclaredType string
	Points       int
	WasCorrect   bool
}

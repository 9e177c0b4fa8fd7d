package ledger

import (
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

// DefaultProfile is the already-active demo user every session starts with.
func DefaultProfile() models.Profile {
	return models.Profile{
		ID:                   1,
		Name:                 "Eco Warrior",
		AvatarGlyph:          "🌱",
		Points:               1250,
		Level:                models.LevelForPoints(1250),
		Streak:               7,
		TotalItemsSegregated: 45,
		Badges:               []string{"First Scan", "Week Warrior", "Plastic Master"},
	}
}

type seed struct {
	name    string
	typ     waste.Type
	points  int
	date    string
	correct bool
}

// oldest first
var defaultHistory = []seed{
	{name: "Paper", typ: waste.TypeOrganic, points: 10, date: "2024-01-11", correct: true},
	{name: "Battery", typ: waste.TypeHazardous, points: 0, date: "2024-01-12", correct: false},
	{name: "Old Phone", typ: waste.TypeEWaste, points: 25, date: "2024-01-13", correct: true},
	{name: "Apple Core", typ: waste.TypeOrganic, points: 10, date: "2024-01-14", correct: true},
	{name: "Plastic Bottle", typ: waste.TypePlastic, points: 15, date: "2024-01-15", correct: true},
}

func (l *Ledger) seedHistory() []models.WasteEvent {
	events := make([]models.WasteEvent, 0, len(defaultHistory))
	for _, s := range defaultHistory {
		ts, _ := time.Parse(time.DateOnly, s.date)
		events = append(events, models.WasteEvent{
			ID:            l.nextID(),
			Name:          s.name,
			DeclaredType:  string(s.typ),
			PointsAwarded: s.points,
			Timestamp:     ts,
			WasCorrect:    s.correct,
		})
	}
	return events
}

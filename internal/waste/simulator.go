package waste

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Item is an entry of the simulation catalog.
type Item struct {
	Name   string
	Type   Type
	Points int
	Icon   string
}

// SampleItems is the catalog the simulator draws from.
var SampleItems = []Item{
	{Name: "Plastic Bottle", Type: TypePlastic, Points: 15, Icon: "🥤"},
	{Name: "Apple Core", Type: TypeOrganic, Points: 10, Icon: "🍎"},
	{Name: "Old Phone", Type: TypeEWaste, Points: 25, Icon: "📱"},
	{Name: "Battery", Type: TypeHazardous, Points: 30, Icon: "🔋"},
	{Name: "Paper", Type: TypeOrganic, Points: 10, Icon: "📄"},
	{Name: "Glass Bottle", Type: TypePlastic, Points: 15, Icon: "🍾"},
}

const (
	minSimulatedConfidence  = 0.7
	simulatedConfidenceSpan = 0.3
	maxSimulatedObjects     = 3
)

// Source is the randomness the simulator needs; *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Simulator produces plausible classifications without a model: a random
// catalog item, confidence in [0.7, 1.0), points floor(item points *
// confidence) and one to three objects.
type Simulator struct {
	mu    sync.Mutex
	src   Source
	items []Item
}

// NewSimulator uses src, or a randomly seeded PCG when src is nil.
func NewSimulator(src Source) *Simulator {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{src: src, items: SampleItems}
}

func (s *Simulator) Simulate() Classification {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.items[s.src.IntN(len(s.items))]
	confidence := minSimulatedConfidence + s.src.Float64()*simulatedConfidenceSpan

	return Classification{
		PredictedClass: item.Name,
		WasteType:      item.Type,
		Confidence:     confidence,
		Points:         int(math.Floor(float64(item.Points) * confidence)),
		ObjectCount:    s.src.IntN(maxSimulatedObjects) + 1,
	}
}

// Predict draws a model class and a confidence the same way Simulate does.
// The dev server uses it in place of a trained model.
func (s *Simulator) Predict() (string, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := ModelClasses[s.src.IntN(len(ModelClasses))]
	return class, minSimulatedConfidence + s.src.Float64()*simulatedConfidenceSpan
}

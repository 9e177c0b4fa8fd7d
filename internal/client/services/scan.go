package services

import (
	"context"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

// Classifier turns an encoded image into a classification result.
type Classifier interface {
	Classify(ctx context.Context, image []byte) waste.Result
}

// WasteRecorder is the part of the ledger the scanner writes to.
type WasteRecorder interface {
	RecordWasteEvent(ctx context.Context, c models.WasteCandidate) models.WasteEvent
}

// ScanOutcome is what the scanner shows the user. When the classifier
// failed, Simulated is set and Reason says why.
type ScanOutcome struct {
	Classification waste.Classification
	Simulated      bool
	Reason         error
}

type ScanService struct {
	classifier Classifier
	simulator  *waste.Simulator
	recorder   WasteRecorder
	logger     logging.Logger
}

func NewScanService(c Classifier, sim *waste.Simulator, rec WasteRecorder, logger logging.Logger) *ScanService {
	if sim == nil {
		sim = waste.NewSimulator(nil)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ScanService{
		classifier: c,
		simulator:  sim,
		recorder:   rec,
		logger:     logger.With("module", "scan"),
	}
}

// Scan classifies image. Any classifier failure is replaced by a simulated
// classification, so Scan always yields something the user can confirm.
func (s *ScanService) Scan(ctx context.Context, image []byte) ScanOutcome {
	var res waste.Result
	if s.classifier == nil {
		res = waste.Failure(nil)
	} else {
		res = s.classifier.Classify(ctx, image)
	}

	if c, ok := res.Classification(); ok {
		s.logger.Debug(ctx, "image classified", "class", c.PredictedClass, "confidence", c.Confidence)
		return ScanOutcome{Classification: c}
	}

	reason := res.Reason()
	s.logger.Warn(ctx, "classifier failed, using simulation", "reason", reason)
	return ScanOutcome{
		Classification: s.simulator.Simulate(),
		Simulated:      true,
		Reason:         reason,
	}
}

// Confirm records the user's answer for c. The answer is correct when it
// matches the classified type; only correct answers carry the points.
func (s *ScanService) Confirm(ctx context.Context, selection waste.Type, c waste.Classification) models.WasteEvent {
	correct := selection == c.WasteType
	points := 0
	if correct {
		points = c.Points
	}

	return s.recorder.RecordWasteEvent(ctx, models.WasteCandidate{
		Name:         c.PredictedClass,
		DeclaredType: string(c.WasteType),
		Points:       points,
		WasCorrect:   correct,
	})
}

// Package model is the dev server's stand-in for the garbage classification
// network: image decoding, a simulated predictor and the object counter.
package model

import (
	"context"
	"image"

	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

const (
	Name        = "Garbage Classification Model"
	Description = "MobileNetV2-based waste classification model"

	// NotLoadedClass is reported when no model is available.
	NotLoadedClass = "Model not loaded"
)

// InputShape is the tensor shape the network expects.
var InputShape = []int{224, 224, 3}

// Classifier predicts the waste class of a decoded image.
type Classifier interface {
	Predict(ctx context.Context, img image.Image) (class string, confidence float64, err error)
	Loaded() bool
	Classes() []string
}

// Simulated draws predictions at random instead of running a network.
type Simulated struct {
	sim    *waste.Simulator
	loaded bool
}

// NewSimulated returns a predictor; when loaded is false it behaves like a
// server whose model file failed to load.
func NewSimulated(sim *waste.Simulator, loaded bool) *Simulated {
	if sim == nil {
		sim = waste.NewSimulator(nil)
	}
	return &Simulated{sim: sim, loaded: loaded}
}

func (m *Simulated) Predict(ctx context.Context, img image.Image) (string, float64, error) {
	if !m.loaded {
		return NotLoadedClass, 0, nil
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	class, confidence := m.sim.Predict()
	return class, confidence, nil
}

func (m *Simulated) Loaded() bool { return m.loaded }

func (m *Simulated) Classes() []string {
	return append([]string(nil), waste.ModelClasses...)
}

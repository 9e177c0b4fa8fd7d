package waste

import "errors"

// Classification is the classifier's verdict for one image, in the JSON
// shape of the classification endpoint.
type Classification struct {
	PredictedClass string  `json:"predicted_class"`
	WasteType      Type    `json:"waste_type"`
	Confidence     float64 `json:"confidence"`
	Points         int     `json:"points"`
	ObjectCount    int     `json:"object_count"`
}

// ScaledPoints is int(base * confidence) with confidence clamped to [0,1].
func ScaledPoints(t Type, confidence float64) int {
	switch {
	case confidence < 0:
		confidence = 0
	case confidence > 1:
		confidence = 1
	}
	return int(float64(t.BasePoints()) * confidence)
}

var ErrNoReason = errors.New("classification failed")

// Result is either a successful classification or the reason the
// classifier could not produce one. The zero value is a failure.
type Result struct {
	classification Classification
	reason         error
	ok             bool
}

func Success(c Classification) Result {
	return Result{classification: c, ok: true}
}

// Failure wraps reason; a nil reason becomes ErrNoReason.
func Failure(reason error) Result {
	if reason == nil {
		reason = ErrNoReason
	}
	return Result{reason: reason}
}

// Classification returns the verdict and true on success.
func (r Result) Classification() (Classification, bool) {
	return r.classification, r.ok
}

// Reason returns nil on success.
func (r Result) Reason() error {
	if r.ok {
		return nil
	}
	if r.reason == nil {
		return ErrNoReason
	}
	return r.reason
}

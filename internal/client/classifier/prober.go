package classifier

import "context"

// Prober reports whether the classification model is loaded and serving.
type Prober interface {
	ModelLoaded(ctx context.Context) (bool, error)
}

var (
	_ Prober = (*HTTPClient)(nil)
	_ Prober = (*GRPCProbe)(nil)
)

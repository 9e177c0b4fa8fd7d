// Package classifier talks to the waste classification service.
//
// HTTPClient consumes the JSON contract (/classify, /health, /info) and
// reports classifications as waste.Result values, so callers never see a
// transport error on the classify path: every failure is a waste.Failure
// whose reason matches ErrUnavailable, ErrBadResponse or ErrRejected with
// errors.Is. GRPCProbe checks liveness over the standard gRPC health
// protocol. Both implement Prober.
//
// Requests are never retried; the scanner falls back to simulation instead.
package classifier

package classifier

import "errors"

var (
	// ErrUnavailable means the service could not be reached or answered
	// with a server error.
	ErrUnavailable = errors.New("classifier unavailable")
	// ErrBadResponse means the reply could not be decoded.
	ErrBadResponse = errors.New("malformed classifier response")
	// ErrRejected means the service refused the request.
	ErrRejected = errors.New("classifier rejected the request")
)

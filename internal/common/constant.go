// Package common contains shared constants and sentinel errors used across
// EcoRewards components.
package common

const (
	// SessionKey is the local store key that holds the sealed credentials
	// of the current session.
	SessionKey = "ecorewards_user"

	// DeviceSaltKey is the local store key of the per-install salt used to
	// derive the session seal key.
	DeviceSaltKey = "ecorewards_device_salt"

	// HealthServiceName is the service name reported by the classifier's
	// gRPC health endpoint.
	HealthServiceName = "classifier"
)

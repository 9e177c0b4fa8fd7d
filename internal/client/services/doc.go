// Package services holds the client's application services. They sit
// between the terminal views and the ledger: the encrypted session store
// backing login persistence, the scanner with its simulation fallback and
// the reward catalog with redemption checks.
package services

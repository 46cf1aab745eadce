package storage

import "errors"

// Errors shared by every storage implementation.
var (
	// ErrAlreadyInTx rejects starting a transaction from a transactional
	// handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx rejects commit or rollback on a non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)

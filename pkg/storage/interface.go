// Package storage declares the persistence interfaces the service depends
// on: project and deliverable storage, background job inserts and transaction
// management. pkg/storage/postgres provides the implementation.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage combines every domain-specific storage capability.
type AllStorage interface {
	ProjectStorage
	DeliverableStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. The handle is
// dead after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists everything done on this handle.
	Commit() error
	// Rollback discards everything done on this handle.
	Rollback() error
}

// Storage is the non-transactional handle the service holds for its
// lifetime. It can open transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connections. The handle is dead after
	// Close.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing on nil and rolling back
	// on error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

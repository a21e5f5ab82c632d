// Package session persists the single authenticated-session record between
// portal runs. The record is an opaque JSON blob in one storage slot, the
// local equivalent of the original portal's auth cookie. There is no
// integrity protection or expiry on the slot; adding signing later only
// requires a new Store implementation.
package session

import "context"

// Store is the storage slot for the persisted session record.
type Store interface {
	// Get returns the stored record, or (nil, nil) when the slot is empty.
	Get(ctx context.Context) ([]byte, error)

	// Set overwrites the slot with value.
	Set(ctx context.Context, value []byte) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

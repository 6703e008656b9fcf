// Package storage provides the local key-value store the partner app
// persists into: a handful of well-known keys, each holding one JSON
// document. Backends share a single small contract so the catalog and
// storefront repositories stay agnostic of where the bytes live.
package storage

import "context"

// Storage is a key-value store of JSON documents.
type Storage interface {
	// Get returns the value stored under key. The second return is false
	// when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

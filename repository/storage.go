// file: repository/storage.go

package repository

import (
	"context"
	"errors"
)

// ErrItemNotFound is returned by GetItem when the key has never been set or was removed.
var ErrItemNotFound = errors.New("storage item not found")

// IStorage is the persistent key-value storage the session lives in.
// SetItems and RemoveItems are all-or-nothing: either every key is written
// (or removed) or none is.
type IStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItems(ctx context.Context, items map[string]string) error
	RemoveItems(ctx context.Context, keys ...string) error
}

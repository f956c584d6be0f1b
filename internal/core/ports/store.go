package ports

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by store adapters when a key has no value.
var ErrRecordNotFound = errors.New("record not found")

// Clearer wipes every collection of a store. Used by the cleardb utility.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

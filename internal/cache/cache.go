package cache

import (
	"context"
	"errors"
)

// The two logical slots the ledger persists. SlotInventory holds the
// serialized item collection; SlotPage holds the last viewed page index.
const (
	SlotInventory = "inventory_data"
	SlotPage      = "inventory_page"
)

// ErrMiss reports an absent slot.
var ErrMiss = errors.New("cache: slot not found")

// Store is the durable key-value cache boundary. Implementations must
// return ErrMiss from Get when the slot has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

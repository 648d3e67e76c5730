package ports

import "context"

// Storage keys. Each key holds one independent JSON-text collection.
const (
	KeyUsers     = "sula_users"
	KeySession   = "sula_session"
	KeyBookings  = "sula_bookings"
	KeyFavorites = "sula_favorites"
)

// KVStore is the durable local key-value medium backing all persisted state.
// Values are UTF-8 JSON text. Writes are last-writer-wins; there is no
// locking, versioning, or cross-key transaction.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

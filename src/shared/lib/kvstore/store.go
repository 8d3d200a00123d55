package kvstore

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store is a flat key space of structured values. The only way to list
// a "collection" is to enumerate the keys sharing a prefix.
// No guarantees are made beyond atomicity of a single key
//
//counterfeiter:generate . Store
type Store interface {
	// Get fails with NotFoundMark when nothing is stored under the key
	Get(ctx context.Context, key string) (map[string]any, error)
	// BatchGet fetches all keys in one round trip. Keys without a value
	// are left out of the result rather than failing the batch
	BatchGet(ctx context.Context, keys []string) (map[string]map[string]any, error)
	Set(ctx context.Context, key string, value map[string]any) error
	// Delete reports how many keys were removed, 0 or 1
	Delete(ctx context.Context, key string) (int, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
}

package usecase

import "context"

// ViewCache is the rendering layer's page cache. Mutation handlers delete the
// affected page key so the next view reflects the write; there is no data
// cache or eviction policy beyond the TTL.
type ViewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

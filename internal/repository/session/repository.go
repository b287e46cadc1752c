package session

import (
	"context"

	"storefront-gateway/internal/domain"
)

// Store persists one customer record per browser session. Implementations
// return domain.ErrNotFound for absent or expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (*domain.CustomerRecord, error)
	Set(ctx context.Context, id string, record domain.CustomerRecord) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

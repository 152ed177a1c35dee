package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

type clientCtxKey struct{}

var (
	mu     sync.RWMutex
	shared *asynq.Client
)

// SetClient installs the process-wide asynq client used by Dispatcher and returns
// a function that puts the previous one back.
func SetClient(c *asynq.Client) (restore func()) {
	mu.Lock()
	prev := shared
	shared = c
	mu.Unlock()

	return func() { SetClient(prev) }
}

// WithClient returns a context whose tasks go through c instead of the shared client.
func WithClient(ctx context.Context, c *asynq.Client) context.Context {
	return context.WithValue(ctx, clientCtxKey{}, c)
}

// GetClient prefers a client carried by ctx and falls back to the shared one.
// It returns nil when neither is set.
func GetClient(ctx context.Context) *asynq.Client {
	if c, ok := ctx.Value(clientCtxKey{}).(*asynq.Client); ok && c != nil {
		return c
	}

	mu.RLock()
	defer mu.RUnlock()

	return shared
}

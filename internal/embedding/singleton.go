package embedding

import (
	"context"
	"sync"
)

// defaultHolder lazily initializes the process-wide shared embedder. The
// embedder is stateless after construction and safe for concurrent reads;
// it is never replaced once set.
var defaultHolder struct {
	once     sync.Once
	embedder Embedder
	err      error
}

// Init constructs the shared embedder on first call and returns the same
// instance (or the same construction error) on every subsequent call.
// Callers should treat an error as fatal at startup: every semantic feature
// depends on the embedder existing.
func Init(ctx context.Context, apiKey, modelName string) (Embedder, error) {
	defaultHolder.once.Do(func() {
		defaultHolder.embedder, defaultHolder.err = NewGeminiEmbedder(ctx, apiKey, modelName)
	})
	return defaultHolder.embedder, defaultHolder.err
}

package shared

import (
	"context"

	"go.uber.org/zap"
)

// SingletonStore reads and writes a single keyed document.
type SingletonStore[T any] interface {
	Get(ctx context.Context) (doc T, found bool, err error)
	Upsert(ctx context.Context, doc T) (T, error)
}

// LoadSingleton returns the stored document. A store error or a document that
// was never written yields fallback() instead.
func LoadSingleton[T any](ctx context.Context, store SingletonStore[T], fallback func() T, log *zap.Logger, name string) T {
	doc, found, err := store.Get(ctx)
	if err != nil {
		log.Warn("singleton: store unavailable, serving fallback", zap.String("doc", name), zap.Error(err))
		return fallback()
	}
	if !found {
		return fallback()
	}
	return doc
}

package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"techfest/internal/domain"
)

const jsonContentType = "application/json"

// Store reconciles one entity catalog across three tiers: a fast local cache,
// a durable JSON object in remote storage, and a hard-coded default array.
// The store owns the catalog exclusively; callers receive it via constructor
// injection and mutate it only through Save with the full desired array.
type Store[T any] struct {
	mu       sync.Mutex
	objects  domain.ObjectStore
	cache    domain.Cache
	bucket   string
	object   string
	cacheKey string
	defaults []T
	logger   *slog.Logger
}

// New returns a Store persisting to bucket/object with the given cache key.
// defaults seed the catalog when neither cache nor durable copy is readable.
func New[T any](objects domain.ObjectStore, cache domain.Cache, bucket, object, cacheKey string, defaults []T, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		objects:  objects,
		cache:    cache,
		bucket:   bucket,
		object:   object,
		cacheKey: cacheKey,
		defaults: defaults,
		logger:   logger,
	}
}

// Load resolves the catalog array. Order: cache, then durable object, then
// defaults. A default fallback opportunistically persists the defaults as the
// durable copy so the next load finds one. Load never fails outward.
func (s *Store[T]) Load(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.cache.Get(s.cacheKey); ok {
		var records []T
		if err := json.Unmarshal([]byte(raw), &records); err == nil {
			return records
		}
		// Corrupt cache entry: drop it and fall through to the durable copy.
		s.logger.Warn("dropping unparseable cache entry", "key", s.cacheKey)
		s.cache.Delete(s.cacheKey)
	}

	if data, err := s.objects.Download(ctx, s.bucket, s.object); err == nil {
		var records []T
		if err := json.Unmarshal(data, &records); err == nil {
			s.cache.Set(s.cacheKey, string(data))
			return records
		}
		s.logger.Error("durable catalog copy is unparseable", "object", s.object, "err", err)
	} else {
		s.logger.Warn("failed to fetch durable catalog copy", "object", s.object, "err", err)
	}

	// Self-healing bootstrap: seed the durable copy from the defaults.
	defaults := append([]T(nil), s.defaults...)
	if data, err := json.Marshal(defaults); err == nil {
		s.cache.Set(s.cacheKey, string(data))
		if err := s.objects.Upload(ctx, s.bucket, s.object, data, jsonContentType); err != nil {
			s.logger.Warn("failed to persist default catalog", "object", s.object, "err", err)
		}
	}
	return defaults
}

// Save replaces the entire catalog. The cache write is unconditional and
// cannot fail visibly; the returned bool reflects only the durable-write
// outcome. Cache and durable copy may diverge until the next Load clears the
// cache if the upload fails.
func (s *Store[T]) Save(ctx context.Context, records []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("failed to serialize catalog", "object", s.object, "err", err)
		return false
	}
	s.cache.Set(s.cacheKey, string(data))
	if err := s.objects.Upload(ctx, s.bucket, s.object, data, jsonContentType); err != nil {
		s.logger.Error("failed to upload catalog", "object", s.object, "err", err)
		return false
	}
	return true
}

package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"techfest/internal/cache"
	"techfest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeObjectStore implements domain.ObjectStore backed by a map.
type fakeObjectStore struct {
	objects     map[string][]byte
	downloadErr error
	uploadErr   error
	uploads     int
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads++
	f.objects[bucket+"/"+path] = append([]byte(nil), data...)
	return nil
}

func (f *fakeObjectStore) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	data, ok := f.objects[bucket+"/"+path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeObjectStore) Remove(ctx context.Context, bucket string, paths []string) error {
	for _, p := range paths {
		delete(f.objects, bucket+"/"+p)
	}
	return nil
}

func (f *fakeObjectStore) PublicURL(bucket, path string) string {
	return "https://storage.example.com/" + bucket + "/" + path
}

func newTestStore(objects domain.ObjectStore, c domain.Cache) *Store[domain.Event] {
	return New(objects, c, "registrations", EventsObject, EventsCacheKey, DefaultEvents(), testLogger)
}

func TestStore_LoadFallsBackToDefaultsAndSelfHeals(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	objects.downloadErr = errors.New("network unreachable")
	c := cache.NewMemory()
	store := newTestStore(objects, c)

	events := store.Load(ctx)
	require.Equal(t, DefaultEvents(), events)

	// Defaults are persisted as the durable copy once reachable again.
	objects.downloadErr = nil
	_, ok := objects.objects["registrations/"+EventsObject]
	assert.True(t, ok, "defaults should be written as the durable copy")
	_, ok = c.Get(EventsCacheKey)
	assert.True(t, ok, "defaults should be cached")
}

func TestStore_LoadPrefersCache(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	objects.downloadErr = errors.New("should not be called")
	c := cache.NewMemory()
	c.Set(EventsCacheKey, `[{"id":"ev-cached","name":"Cached","team_size":1,"registration_type":"solo"}]`)
	store := newTestStore(objects, c)

	events := store.Load(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-cached", events[0].ID)
}

func TestStore_LoadPopulatesCacheFromDurableCopy(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	objects.objects["registrations/"+EventsObject] = []byte(`[{"id":"ev-remote","name":"Remote","team_size":1,"registration_type":"solo"}]`)
	c := cache.NewMemory()
	store := newTestStore(objects, c)

	events := store.Load(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-remote", events[0].ID)

	cached, ok := c.Get(EventsCacheKey)
	require.True(t, ok)
	assert.JSONEq(t, string(objects.objects["registrations/"+EventsObject]), cached)
}

func TestStore_LoadDropsCorruptCacheEntry(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	objects.objects["registrations/"+EventsObject] = []byte(`[{"id":"ev-remote"}]`)
	c := cache.NewMemory()
	c.Set(EventsCacheKey, `{not json`)
	store := newTestStore(objects, c)

	events := store.Load(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-remote", events[0].ID)
}

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	c := cache.NewMemory()
	store := newTestStore(objects, c)

	records := []domain.Event{
		{ID: "ev-1", Name: "One", TeamSize: 1, Fees: 50, RegistrationType: domain.RegistrationSolo},
		{ID: "ev-2", Name: "Two", TeamSize: 4, Fees: 0, RegistrationType: domain.RegistrationTeam},
	}
	require.True(t, store.Save(ctx, records))

	got := store.Load(ctx)
	assert.Equal(t, records, got)
}

func TestStore_SaveReportsOnlyDurableOutcome(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjectStore()
	objects.uploadErr = errors.New("storage unavailable")
	c := cache.NewMemory()
	store := newTestStore(objects, c)

	records := []domain.Event{{ID: "ev-1", Name: "One", TeamSize: 1, RegistrationType: domain.RegistrationSolo}}
	ok := store.Save(ctx, records)
	assert.False(t, ok, "durable write failed")

	// The cache write still happened: the tiers diverge until the next load.
	cached, found := c.Get(EventsCacheKey)
	require.True(t, found)
	assert.Contains(t, cached, "ev-1")
}

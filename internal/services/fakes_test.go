package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"techfest/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *fakeCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

type fakeObjectStore struct {
	mu          sync.Mutex
	objects     map[string][]byte
	uploadErr   error
	downloadErr error
	removeErr   error
	removed     []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) key(bucket, path string) string {
	return bucket + "/" + path
}

func (s *fakeObjectStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[s.key(bucket, path)] = data
	return nil
}

func (s *fakeObjectStore) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[s.key(bucket, path)]
	if !ok {
		return nil, fmt.Errorf("object %s not found", s.key(bucket, path))
	}
	return data, nil
}

func (s *fakeObjectStore) Remove(ctx context.Context, bucket string, paths []string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		delete(s.objects, s.key(bucket, p))
		s.removed = append(s.removed, p)
	}
	return nil
}

func (s *fakeObjectStore) PublicURL(bucket, path string) string {
	return "https://storage.example.com/" + bucket + "/" + path
}

type fakeRegistrationRepo struct {
	mu        sync.Mutex
	created   []*domain.Registration
	createErr error
	deleteErr error
	listed    []*domain.Registration
	listErr   error
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *reg
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []*domain.Registration
	for _, reg := range r.listed {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, len(out), nil
}

func (r *fakeRegistrationRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	return r.listed, len(r.listed), nil
}

func (r *fakeRegistrationRepo) DeleteByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if r.deleteErr != nil {
		return nil, r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted, remaining []*domain.Registration
	for _, reg := range r.created {
		if reg.EventID == eventID {
			deleted = append(deleted, reg)
		} else {
			remaining = append(remaining, reg)
		}
	}
	r.created = remaining
	return deleted, nil
}

type fakeAdminRepo struct {
	cred *domain.AdminCredential
	err  error
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminCredential, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.cred == nil || r.cred.Username != username {
		return nil, domain.ErrNotFound
	}
	return r.cred, nil
}

type fakeHasher struct {
	compareErr error
}

func (h *fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (h *fakeHasher) Hash(salt, password string) (string, error) {
	return "hashed:" + salt + ":" + password, nil
}

func (h *fakeHasher) Compare(hash, salt, password string) error {
	if h.compareErr != nil {
		return h.compareErr
	}
	if hash != "hashed:"+salt+":"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeTokenIssuer struct {
	err error
}

func (i *fakeTokenIssuer) Issue(username string, expiry time.Duration) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	return "token-for-" + username, nil
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationConfirmedEmailData
	err  error
}

func (s *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmedEmailData) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, data)
	return nil
}

type fakeMailer struct {
	mu       sync.Mutex
	to       []string
	subjects []string
	err      error
}

func (m *fakeMailer) Send(to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = append(m.to, to)
	m.subjects = append(m.subjects, subject)
	return nil
}

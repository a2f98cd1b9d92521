package storage

import (
	"bytes"
	"context"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"

	"techfest/internal/domain"
)

type supabaseStore struct {
	client *storage_go.Client
}

// NewSupabaseStore returns an ObjectStore backed by a Supabase storage
// project. url is the project URL, key the service API key.
func NewSupabaseStore(url, key string) domain.ObjectStore {
	return &supabaseStore{client: storage_go.NewClient(url+"/storage/v1", key, nil)}
}

func (s *supabaseStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	upsert := true
	_, err := s.client.UploadFile(bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

func (s *supabaseStore) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	data, err := s.client.DownloadFile(bucket, path)
	if err != nil {
		return nil, fmt.Errorf("download %s/%s: %w", bucket, path, err)
	}
	return data, nil
}

func (s *supabaseStore) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if _, err := s.client.RemoveFile(bucket, paths); err != nil {
		return fmt.Errorf("remove %d objects from %s: %w", len(paths), bucket, err)
	}
	return nil
}

func (s *supabaseStore) PublicURL(bucket, path string) string {
	return s.client.GetPublicUrl(bucket, path).SignedURL
}

package domain

import "context"

// ObjectStore abstracts the remote object storage tier (JSON snapshots,
// registration backups, uploaded images).
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	Download(ctx context.Context, bucket, path string) ([]byte, error)
	Remove(ctx context.Context, bucket string, paths []string) error
	// PublicURL returns the public URL of an object; it does not check that
	// the object exists.
	PublicURL(bucket, path string) string
}

// Cache is the fast local string-valued key-value tier in front of the object
// store. Writes cannot fail visibly.
type Cache interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
	Delete(key string)
}

// Package fsx abstracts object storage for uploaded files.
package fsx

import "context"

// FileSystem stores and serves uploaded files (resumes, profile photos).
type FileSystem interface {
	// Put stores data under key and returns the public URL of the object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for an already stored object.
	URL(key string) string
}

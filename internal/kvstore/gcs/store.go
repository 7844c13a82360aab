// Package gcs provides a kvstore.Store that keeps each key as an object in
// a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/semana-app/semana/internal/kvstore"
)

const objectSuffix = ".kv"

// Store is a GCS-backed key-value store.
type Store struct {
	client *storage.Client
	bucket string
}

// NewStore creates a store over the given bucket.
// It assumes the client is authenticated (e.g. via GOOGLE_APPLICATION_CREDENTIALS).
func NewStore(ctx context.Context, bucketName string) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &Store{
		client: client,
		bucket: bucketName,
	}, nil
}

func (s *Store) object(key string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(key + objectSuffix)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	r, err := s.object(key).NewReader(ctx)
	if err != nil {
		// Use errors.Is to handle wrapped errors from the GCS client.
		if errors.Is(err, storage.ErrObjectNotExist) {
			return "", kvstore.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	return string(data), nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	w := s.object(key).NewWriter(ctx)
	if _, err := w.Write([]byte(value)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var keys []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if !strings.HasSuffix(attrs.Name, objectSuffix) {
			continue
		}
		// The query prefix matches object names; re-check against the key
		// itself once the suffix is stripped.
		if key := strings.TrimSuffix(attrs.Name, objectSuffix); strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

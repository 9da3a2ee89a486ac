package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
	"yocc-backend/internal/models"
)

// SupabaseStore writes to a public Supabase Storage bucket.
type SupabaseStore struct {
	client  *storage_go.Client
	bucket  string
	baseURL string
}

// NewSupabaseStoreFromProject builds the storage client off a Supabase
// project client.
func NewSupabaseStoreFromProject(projectURL, key, bucket string) (*SupabaseStore, error) {
	projectURL = strings.TrimSuffix(projectURL, "/")
	client, err := supabase.NewClient(projectURL, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return NewSupabaseStore(client.Storage, projectURL, bucket), nil
}

func NewSupabaseStore(client *storage_go.Client, projectURL, bucket string) *SupabaseStore {
	return &SupabaseStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(projectURL, "/"),
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, folder string, data []byte, contentType string) (models.ImageRef, error) {
	storagePath := objectKey(folder, contentType)

	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("failed to upload file: %w", err)
	}

	return models.ImageRef{URL: s.PublicURL(storagePath), PublicID: storagePath}, nil
}

func (s *SupabaseStore) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *SupabaseStore) Delete(ctx context.Context, publicID string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

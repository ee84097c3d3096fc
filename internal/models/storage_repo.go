package models

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// StoredObject describes an uploaded payment proof. Nothing is persisted here;
// the caller records the descriptor against a booking.
type StoredObject struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type StorageRepo interface {
	StoreObject(ctx context.Context, path string, data io.Reader, size int64, mimeType string) (*StoredObject, error)
	RemoveObject(ctx context.Context, path string) error
}

// StoreObject uploads to the proof bucket with upsert disabled, so a path
// collision fails instead of overwriting an existing proof.
func (su *SupabaseRepo) StoreObject(ctx context.Context, path string, data io.Reader, size int64, mimeType string) (*StoredObject, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	upsert := false
	_, err := su.supabaseClient.Storage.UploadFile(su.proofBucket, path, data, storage_go.FileOptions{
		ContentType: &mimeType,
		Upsert:      &upsert,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %v", err)
	}

	publicURL := su.supabaseClient.Storage.GetPublicUrl(su.proofBucket, path)

	return &StoredObject{
		URL:      publicURL.SignedURL,
		Path:     path,
		Size:     size,
		MimeType: mimeType,
	}, nil
}

func (su *SupabaseRepo) RemoveObject(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("storage path is required")
	}

	if _, err := su.supabaseClient.Storage.RemoveFile(su.proofBucket, []string{path}); err != nil {
		return fmt.Errorf("failed to remove object: %v", err)
	}

	return nil
}

package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
)

type fakeStorageRepo struct {
	storeCalls  int
	removeCalls int
	lastPath    string
	storeErr    error
}

func (f *fakeStorageRepo) StoreObject(ctx context.Context, path string, data io.Reader, size int64, mimeType string) (*models.StoredObject, error) {
	f.storeCalls++
	f.lastPath = path
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return &models.StoredObject{
		URL:      "https://example.supabase.co/storage/v1/object/public/booking-files/" + path,
		Path:     path,
		Size:     size,
		MimeType: mimeType,
	}, nil
}

func (f *fakeStorageRepo) RemoveObject(ctx context.Context, path string) error {
	f.removeCalls++
	f.lastPath = path
	return nil
}

func TestUploadPaymentProofRejectsBeforeStorage(t *testing.T) {
	cases := []struct {
		name          string
		size          int64
		mimeType      string
		bookingNumber string
		clientName    string
	}{
		{"oversized file", helpers.MaxProofSize + 1, "image/png", "BK-1", "ama"},
		{"executable content type", 100, "application/x-msdownload", "BK-1", "ama"},
		{"text content type", 100, "text/plain", "BK-1", "ama"},
		{"missing booking number", 100, "image/png", "  ", "ama"},
		{"missing client name", 100, "image/png", "BK-1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeStorageRepo{}
			svc := NewUploadService(repo)

			_, err := svc.UploadPaymentProof(context.Background(), strings.NewReader("data"), tc.size, tc.mimeType, "receipt.png", tc.bookingNumber, tc.clientName)
			if !errors.Is(err, ErrInvalidUpload) {
				t.Fatalf("err = %v, want ErrInvalidUpload", err)
			}
			if repo.storeCalls != 0 {
				t.Errorf("storage was called %d times for an invalid upload", repo.storeCalls)
			}
		})
	}
}

func TestUploadPaymentProofStoresValidFile(t *testing.T) {
	repo := &fakeStorageRepo{}
	svc := NewUploadService(repo)

	stored, err := svc.UploadPaymentProof(context.Background(), strings.NewReader("data"), 4, "image/jpeg", "Receipt Photo.JPG", "BK-1042", "Ama Serwaa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.storeCalls != 1 {
		t.Fatalf("expected 1 storage call, got %d", repo.storeCalls)
	}
	if !strings.HasPrefix(stored.Path, helpers.ProofPrefix+"/") {
		t.Errorf("path %q missing %q prefix", stored.Path, helpers.ProofPrefix)
	}
	if !strings.Contains(stored.Path, "_ama_serwaa_BK-1042.jpg") {
		t.Errorf("path %q missing sanitized name and booking number", stored.Path)
	}
	if stored.MimeType != "image/jpeg" {
		t.Errorf("mime type = %q, want image/jpeg", stored.MimeType)
	}
}

func TestDeletePaymentProofPathGuard(t *testing.T) {
	repo := &fakeStorageRepo{}
	svc := NewUploadService(repo)

	if err := svc.DeletePaymentProof(context.Background(), "avatars/admin.png"); !errors.Is(err, ErrInvalidProofPath) {
		t.Errorf("err = %v, want ErrInvalidProofPath", err)
	}
	if repo.removeCalls != 0 {
		t.Errorf("storage remove was called %d times for a rejected path", repo.removeCalls)
	}

	if err := svc.DeletePaymentProof(context.Background(), "payment-proofs/1700000000000_ama_BK-1.pdf"); err != nil {
		t.Errorf("unexpected error for valid proof path: %v", err)
	}
	if repo.removeCalls != 1 {
		t.Errorf("expected 1 remove call, got %d", repo.removeCalls)
	}
}

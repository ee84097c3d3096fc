package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
)

// ErrInvalidUpload marks an upload rejected before any storage call: missing
// fields, oversized file, or a content type outside the whitelist.
var ErrInvalidUpload = errors.New("invalid upload")

// ErrInvalidProofPath marks a delete aimed outside the proof prefix.
var ErrInvalidProofPath = errors.New("invalid proof path")

type UploadService struct {
	storageRepo models.StorageRepo
}

func NewUploadService(storageRepo models.StorageRepo) *UploadService {
	return &UploadService{
		storageRepo: storageRepo,
	}
}

// UploadPaymentProof validates and stores a payment proof, returning its
// public descriptor. Validation happens before any storage call: files over
// 5 MiB and content types outside JPEG/PNG/GIF/PDF are rejected locally.
// Nothing is persisted here; the caller records the descriptor against the
// booking.
func (us *UploadService) UploadPaymentProof(ctx context.Context, data io.Reader, size int64, mimeType, originalName, bookingNumber, clientName string) (*models.StoredObject, error) {
	if strings.TrimSpace(bookingNumber) == "" {
		return nil, fmt.Errorf("%w: booking number is required", ErrInvalidUpload)
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidUpload)
	}
	if size > helpers.MaxProofSize {
		return nil, fmt.Errorf("%w: file exceeds the %d byte limit", ErrInvalidUpload, helpers.MaxProofSize)
	}
	if !helpers.AllowedProofMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: unsupported file type %q, expected JPEG, PNG, GIF or PDF", ErrInvalidUpload, mimeType)
	}

	path := helpers.ProofObjectPath(clientName, bookingNumber, originalName, time.Now())

	return us.storageRepo.StoreObject(ctx, path, data, size, mimeType)
}

// DeletePaymentProof removes a stored proof. Only paths under the proof
// prefix are accepted, so the endpoint cannot be used to delete arbitrary
// objects.
func (us *UploadService) DeletePaymentProof(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, helpers.ProofPrefix+"/") {
		return fmt.Errorf("%w: %q", ErrInvalidProofPath, path)
	}

	return us.storageRepo.RemoveObject(ctx, path)
}

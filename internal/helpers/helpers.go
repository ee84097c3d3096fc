package helpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CoverFolder = "book-covers"
	ProofPrefix = "payment-proofs"

	// MaxProofSize is the upload cap for payment proofs (5 MiB).
	MaxProofSize = 5 << 20
)

// AllowedProofMimeTypes lists the accepted payment proof content types.
var AllowedProofMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Page    int         `json:"page,omitempty"`
	Limit   int         `json:"limit,omitempty"`
	Total   int         `json:"total,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

func PaginatedResponse(data interface{}, page, limit, total int) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// SanitizeClientName lowercases the name and replaces every character outside
// [a-z0-9] with an underscore, so the result is always storage-path safe.
func SanitizeClientName(name string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "_")
}

// FileExtension returns the lowercased extension of the original filename
// without the dot, defaulting to "pdf" when absent.
func FileExtension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "pdf"
	}
	return strings.ToLower(ext)
}

// ProofObjectPath derives the storage path for a payment proof:
// payment-proofs/{unixMillis}_{sanitizedClientName}_{bookingNumber}.{ext}.
// The timestamp prefix keeps concurrent uploads for the same booking from
// colliding.
func ProofObjectPath(clientName, bookingNumber, originalName string, now time.Time) string {
	filename := fmt.Sprintf("%d_%s_%s.%s",
		now.UnixMilli(),
		SanitizeClientName(clientName),
		bookingNumber,
		FileExtension(originalName),
	)
	return ProofPrefix + "/" + filename
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

// UploadCover uploads a single book cover to Cloudinary and returns its secure
// URL and public ID.
func UploadCover(ctx context.Context, cld *cloudinary.Cloudinary, file string) (string, string, error) {
	if strings.TrimSpace(file) == "" {
		return "", "", fmt.Errorf("empty cover image")
	}

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: CoverFolder,
		Tags:   []string{"coachdesk"},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload cover: %v", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// DeleteCover removes a previously uploaded cover. Used to clean up when the
// catalog write fails after the upload succeeded.
func DeleteCover(ctx context.Context, cld *cloudinary.Cloudinary, publicID string) error {
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete cover %s: %v", publicID, err)
	}
	return nil
}

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
		Roles     []string `json:"roles,omitempty"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func ValidateToken(tokenStr string) (*CustomClaims, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL not set")
	}

	jwksURL := fmt.Sprintf("%s/rest/v1/auth/jwks", supabaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		// Fallback to unverified parsing if JWKS fails (for development)
		token, _, parseErr := jwt.NewParser().ParseUnverified(tokenStr, &CustomClaims{})
		if parseErr != nil {
			return nil, fmt.Errorf("JWKS validation failed and fallback parsing failed: %v", parseErr)
		}
		claims, ok := token.Claims.(*CustomClaims)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

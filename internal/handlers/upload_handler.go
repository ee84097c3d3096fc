package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/services"
)

// UploadPaymentProof accepts a multipart form with a "file" part plus
// booking_number and client_name fields. Size and content type are validated
// before the storage call; the response carries the public descriptor the
// caller records against the booking.
func UploadPaymentProof(u *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("file not provided"))
			return
		}

		bookingNumber := c.PostForm("booking_number")
		clientName := c.PostForm("client_name")

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("failed to read uploaded file"))
			return
		}
		defer file.Close()

		mimeType := fileHeader.Header.Get("Content-Type")

		stored, err := u.UploadPaymentProof(
			c.Request.Context(),
			file,
			fileHeader.Size,
			mimeType,
			fileHeader.Filename,
			bookingNumber,
			clientName,
		)
		if err != nil {
			// Size/type/field problems are caller errors; only a storage
			// failure is a 500.
			if errors.Is(err, services.ErrInvalidUpload) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(stored, "payment proof uploaded"))
	}
}

func DeletePaymentProof(u *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("path query parameter is required"))
			return
		}

		if err := u.DeletePaymentProof(c.Request.Context(), path); err != nil {
			if errors.Is(err, services.ErrInvalidProofPath) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "payment proof deleted"))
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/services"
)

// ListBooks returns the whole catalog ordered by display order; prices are
// floats and timestamps RFC3339 text on the wire.
func ListBooks(b *services.BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		books, err := b.ListBooks(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, books)
	}
}

func CreateBook(b *services.BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := b.CreateBook(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func GetBook(b *services.BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookID(c)
		if !ok {
			return
		}

		book, err := b.GetBook(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("book not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, book)
	}
}

func UpdateBook(b *services.BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookID(c)
		if !ok {
			return
		}

		var input models.BookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := b.UpdateBook(c.Request.Context(), id, &input)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("book not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteBook(b *services.BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookID(c)
		if !ok {
			return
		}

		if err := b.DeleteBook(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("book not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "book deleted successfully"))
	}
}

func bookID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid book ID format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

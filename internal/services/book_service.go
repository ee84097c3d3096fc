package services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
)

type BookService struct {
	booksRepo models.BooksRepo
	cld       *cloudinary.Cloudinary
}

func NewBookService(booksRepo models.BooksRepo, cld *cloudinary.Cloudinary) *BookService {
	return &BookService{
		booksRepo: booksRepo,
		cld:       cld,
	}
}

// ListBooks returns the catalog ordered by display order, prices converted to
// float for transport.
func (bs *BookService) ListBooks(ctx context.Context) ([]*models.BookResponse, error) {
	books, err := bs.booksRepo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.BookResponse, 0, len(books))
	for _, book := range books {
		res, err := book.ToResponse()
		if err != nil {
			return nil, err
		}
		responses = append(responses, res)
	}

	return responses, nil
}

func (bs *BookService) CreateBook(ctx context.Context, input *models.BookInput) (*models.BookResponse, error) {
	book, err := input.ToBook()
	if err != nil {
		return nil, err
	}

	if err := models.Validate.Struct(book); err != nil {
		return nil, fmt.Errorf("invalid book data provided: %v", err)
	}

	// Upload the cover first so the record never points at a missing image.
	var coverPublicID string
	if input.CoverImage != "" {
		url, publicID, uploadErr := helpers.UploadCover(ctx, bs.cld, input.CoverImage)
		if uploadErr != nil {
			return nil, fmt.Errorf("failed to upload cover: %v", uploadErr)
		}
		book.CoverURL = url
		coverPublicID = publicID
	}

	created, err := bs.booksRepo.CreateBook(ctx, book)
	if err != nil {
		if coverPublicID != "" {
			_ = helpers.DeleteCover(ctx, bs.cld, coverPublicID)
		}
		return nil, err
	}

	return created.ToResponse()
}

func (bs *BookService) GetBook(ctx context.Context, id primitive.ObjectID) (*models.BookResponse, error) {
	book, err := bs.booksRepo.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return book.ToResponse()
}

// UpdateBook applies only the fields present in the input.
func (bs *BookService) UpdateBook(ctx context.Context, id primitive.ObjectID, input *models.BookInput) (*models.BookResponse, error) {
	fields := bson.M{}
	if input.Title != "" {
		fields["title"] = input.Title
	}
	if input.Author != "" {
		fields["author"] = input.Author
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.Price.Raw != "" {
		price, err := input.Price.Decimal128()
		if err != nil {
			return nil, fmt.Errorf("invalid price: %v", err)
		}
		fields["price"] = price
	}
	if input.StockQuantity.Set {
		fields["stock_quantity"] = input.StockQuantity.Value
	}
	if input.IsAvailable != nil {
		fields["is_available"] = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}
	if input.DisplayOrder.Set {
		fields["display_order"] = input.DisplayOrder.Value
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	updated, err := bs.booksRepo.UpdateBook(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse()
}

func (bs *BookService) DeleteBook(ctx context.Context, id primitive.ObjectID) error {
	return bs.booksRepo.DeleteBook(ctx, id)
}

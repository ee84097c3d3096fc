package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookDbName  = "coachdesk"
	BookColName = "books"
)

// Book is a catalog item. Price is stored as Decimal128 and converted to
// float64 only at the transport boundary.
type Book struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title         string               `bson:"title" json:"title" validate:"required"`
	Author        string               `bson:"author" json:"author"`
	Description   string               `bson:"description" json:"description,omitempty"`
	Price         primitive.Decimal128 `bson:"price" json:"price"`
	StockQuantity int                  `bson:"stock_quantity" json:"stock_quantity"`
	IsAvailable   bool                 `bson:"is_available" json:"is_available"`
	IsFeatured    bool                 `bson:"is_featured" json:"is_featured"`
	PublishedAt   *time.Time           `bson:"published_at,omitempty" json:"published_at,omitempty"`
	DisplayOrder  int                  `bson:"display_order" json:"display_order"`
	CoverURL      string               `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at" json:"updated_at"`
}

func (b *Book) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return nil
}

// BookResponse is the transport shape: price as float, timestamps as RFC3339.
type BookResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	IsAvailable   bool    `json:"is_available"`
	IsFeatured    bool    `json:"is_featured"`
	PublishedAt   string  `json:"published_at,omitempty"`
	DisplayOrder  int     `json:"display_order"`
	CoverURL      string  `json:"cover_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func (b *Book) ToResponse() (*BookResponse, error) {
	price, err := Decimal128ToFloat(b.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price on book %s: %v", b.ID.Hex(), err)
	}

	res := &BookResponse{
		ID:            b.ID.Hex(),
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Price:         price,
		StockQuantity: b.StockQuantity,
		IsAvailable:   b.IsAvailable,
		IsFeatured:    b.IsFeatured,
		DisplayOrder:  b.DisplayOrder,
		CoverURL:      b.CoverURL,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
	if b.PublishedAt != nil {
		res.PublishedAt = b.PublishedAt.Format(time.RFC3339)
	}
	return res, nil
}

func Decimal128ToFloat(d primitive.Decimal128) (float64, error) {
	return strconv.ParseFloat(d.String(), 64)
}

// FlexFloat accepts a JSON number or a numeric string ("29.99"). The raw text
// is kept so the decimal value can be stored without a float round trip.
type FlexFloat struct {
	Value float64
	Raw   string
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", s)
	}
	f.Value = v
	f.Raw = s
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

// Decimal128 parses the raw text so "29.99" stays 29.99 exactly.
func (f FlexFloat) Decimal128() (primitive.Decimal128, error) {
	raw := f.Raw
	if raw == "" {
		raw = strconv.FormatFloat(f.Value, 'f', -1, 64)
	}
	return primitive.ParseDecimal128(raw)
}

// FlexInt accepts a JSON number or a numeric string ("10"). Set records that
// a value was present, so an explicit 0 is distinguishable from an absent
// field on partial updates.
type FlexInt struct {
	Value int
	Set   bool
}

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	i.Value = int(v)
	i.Set = true
	return nil
}

func (i FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(i.Value)), nil
}

// BookInput is the loosely-typed create/update payload: numeric fields arrive
// as text or numbers, booleans default when absent.
type BookInput struct {
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Price         FlexFloat `json:"price"`
	StockQuantity FlexInt   `json:"stock_quantity"`
	IsAvailable   *bool     `json:"is_available"`
	IsFeatured    *bool     `json:"is_featured"`
	PublishedAt   string    `json:"published_at"`
	DisplayOrder  FlexInt   `json:"display_order"`
	CoverImage    string    `json:"cover_image"` // local path or data URI for the cover upload
}

// ToBook materializes the input with defaults: available=true, featured=false,
// order=0.
func (in *BookInput) ToBook() (*Book, error) {
	price, err := in.Price.Decimal128()
	if err != nil {
		return nil, fmt.Errorf("invalid price: %v", err)
	}

	book := &Book{
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		Price:         price,
		StockQuantity: in.StockQuantity.Value,
		IsAvailable:   true,
		IsFeatured:    false,
		DisplayOrder:  in.DisplayOrder.Value,
	}
	if in.IsAvailable != nil {
		book.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		book.IsFeatured = *in.IsFeatured
	}
	if in.PublishedAt != "" {
		published, err := parseDateOrTimestamp(in.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid published_at: %v", err)
		}
		book.PublishedAt = &published
	}
	return book, nil
}

func parseDateOrTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

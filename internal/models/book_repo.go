package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BooksRepo interface {
	CreateBook(ctx context.Context, book *Book) (*Book, error)
	GetBookByID(ctx context.Context, id primitive.ObjectID) (*Book, error)
	ListBooks(ctx context.Context) ([]*Book, error)
	UpdateBook(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Book, error)
	DeleteBook(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBook(ctx context.Context, book *Book) (*Book, error) {
	if err := book.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare book for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, BookDbName, BookColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	if _, err := col.InsertOne(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to insert book: %v", err)
	}

	return book, nil
}

func (mdb *MongodbRepo) GetBookByID(ctx context.Context, id primitive.ObjectID) (*Book, error) {
	col, err := mdb.GetCollection(ctx, BookDbName, BookColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var book Book
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding book: %v", err)
	}

	return &book, nil
}

// ListBooks returns every book ordered ascending by display_order.
func (mdb *MongodbRepo) ListBooks(ctx context.Context) ([]*Book, error) {
	col, err := mdb.GetCollection(ctx, BookDbName, BookColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding books: %v", err)
	}
	defer cursor.Close(ctx)

	var books []*Book
	for cursor.Next(ctx) {
		var book Book
		if err := cursor.Decode(&book); err != nil {
			return nil, fmt.Errorf("error decoding book: %v", err)
		}
		books = append(books, &book)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return books, nil
}

func (mdb *MongodbRepo) UpdateBook(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Book, error) {
	col, err := mdb.GetCollection(ctx, BookDbName, BookColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	fields["updated_at"] = time.Now()
	update := bson.M{"$set": fields}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Book
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating book: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteBook(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, BookDbName, BookColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting book: %v", err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

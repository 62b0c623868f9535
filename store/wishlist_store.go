package store

import (
	"context"
	"errors"
	"fmt"

	"apparel-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WishlistStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Wishlist, error)
	AddProduct(ctx context.Context, wishlistID, userID, productID string) error
	RemoveProduct(ctx context.Context, userID, productID string) error
}

type MongoWishlistStore struct {
	collection *mongo.Collection
}

func NewMongoWishlistStore(db *mongo.Database) *MongoWishlistStore {
	return &MongoWishlistStore{collection: db.Collection("wishlists")}
}

func (s *MongoWishlistStore) FindByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wishlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist: %w", err)
	}
	return &wishlist, nil
}

// AddProduct upserts the user's wishlist and adds the product at most
// once. wishlistID seeds the record's id on first insert.
func (s *MongoWishlistStore) AddProduct(ctx context.Context, wishlistID, userID, productID string) error {
	update := bson.M{
		"$addToSet":    bson.M{"product_ids": productID},
		"$setOnInsert": bson.M{"id": wishlistID, "user_id": userID},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts); err != nil {
		return fmt.Errorf("failed to add wishlist product: %w", err)
	}
	return nil
}

func (s *MongoWishlistStore) RemoveProduct(ctx context.Context, userID, productID string) error {
	update := bson.M{"$pull": bson.M{"product_ids": productID}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to remove wishlist product: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apparel-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	AddItem(ctx context.Context, userID string, item models.CartItem) error
	ReplaceItems(ctx context.Context, userID string, items []models.CartItem) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type MongoCartStore struct {
	collection *mongo.Collection
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{collection: db.Collection("carts")}
}

func (s *MongoCartStore) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &cart, nil
}

func (s *MongoCartStore) Insert(ctx context.Context, cart *models.Cart) error {
	if _, err := s.collection.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}
	return nil
}

// AddItem appends the line as-is. Lines matching an existing
// product+size+color are not merged; the same line can appear twice.
func (s *MongoCartStore) AddItem(ctx context.Context, userID string, item models.CartItem) error {
	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCartStore) ReplaceItems(ctx context.Context, userID string, items []models.CartItem) error {
	update := bson.M{"$set": bson.M{
		"items":      items,
		"updated_at": time.Now().UTC(),
	}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace cart items: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveItem pulls every line for the given product, regardless of size
// or color.
func (s *MongoCartStore) RemoveItem(ctx context.Context, userID, productID string) error {
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"product_id": productID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (s *MongoCartStore) Clear(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{
		"items":      []models.CartItem{},
		"updated_at": time.Now().UTC(),
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

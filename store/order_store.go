package store

import (
	"context"
	"fmt"

	"apparel-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
}

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection("orders")}
}

func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.list(ctx, bson.M{"user_id": userID})
}

func (s *MongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoOrderStore) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus sets status, and payment_status when non-empty. Any value
// is accepted; there is no transition validation.
func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	fields := bson.M{"status": status}
	if paymentStatus != "" {
		fields["payment_status"] = paymentStatus
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

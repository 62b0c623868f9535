package store

import (
	"context"
	"fmt"

	"apparel-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
}

type MongoCategoryStore struct {
	collection *mongo.Collection
}

func NewMongoCategoryStore(db *mongo.Database) *MongoCategoryStore {
	return &MongoCategoryStore{collection: db.Collection("categories")}
}

func (s *MongoCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *MongoCategoryStore) Insert(ctx context.Context, category *models.Category) error {
	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

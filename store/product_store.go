package store

import (
	"context"
	"errors"
	"fmt"

	"apparel-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductFilter captures the optional /products query parameters. Nil
// price bounds mean unbounded; Search matches name or description
// case-insensitively.
type ProductFilter struct {
	Category string
	Size     string
	Color    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

func (f ProductFilter) toBSON() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Size != "" {
		query["sizes"] = f.Size
	}
	if f.Color != "" {
		query["colors"] = f.Color
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}
	if f.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": primitive.Regex{Pattern: f.Search, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: f.Search, Options: "i"}},
		}
	}
	return query
}

type ProductStore interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, input models.ProductInput) error
	Delete(ctx context.Context, id string) error
	PushImage(ctx context.Context, id string, image models.ImageMetadata) error
}

type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection("products")}
}

func (s *MongoProductStore) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, filter.toBSON(), options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update replaces the client-editable fields. Images and created_at keep
// their stored values unless the input carries images explicitly.
func (s *MongoProductStore) Update(ctx context.Context, id string, input models.ProductInput) error {
	fields := bson.M{
		"name":        input.Name,
		"description": input.Description,
		"category":    input.Category,
		"price":       input.Price,
		"sizes":       input.Sizes,
		"colors":      input.Colors,
		"stock":       input.StockOrDefault(),
	}
	if input.Images != nil {
		fields["images"] = input.Images
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) PushImage(ctx context.Context, id string, image models.ImageMetadata) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$push": bson.M{"images": image}})
	if err != nil {
		return fmt.Errorf("failed to push product image: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

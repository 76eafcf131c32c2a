package repo

import (
	"context"
	"errors"
	"time"

	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (r *MongoProductRepository) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) List(opts ListOptions) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	var order bson.D
	switch NormalizeSort(opts.Sort) {
	case SortPriceAsc:
		order = bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		order = bson.D{{Key: "price", Value: -1}}
	case SortFeatured:
		order = bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	default:
		order = bson.D{{Key: "created_at", Value: -1}}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(order))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(id primitive.ObjectID) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *MongoProductRepository) Update(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"category":    p.Category,
		"price":       p.Price,
		"old_price":   p.OldPrice,
		"description": p.Description,
		"stock":       p.Stock,
		"featured":    p.Featured,
		"images":      p.Images,
		"sizes":       p.Sizes,
		"colors":      p.Colors,
		"updated_at":  p.UpdatedAt,
	}}

	after := options.After
	var updated models.Product
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(after)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (r *MongoProductRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

package repo

import (
	"context"
	"errors"
	"time"

	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (r *MongoUserRepository) CreateUser(user models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"username": user.Username})
	if err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrUserExists
	}

	user.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *MongoUserRepository) GetByUsername(username string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

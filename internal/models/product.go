package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the catalog document shared by the API, the repositories and
// the cart snapshot. The identifier is assigned by the store and immutable;
// every other field is mutable via update.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	OldPrice    *float64           `json:"oldPrice,omitempty" bson:"old_price,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
	Featured    bool               `json:"featured" bson:"featured"`
	Images      []string           `json:"images" bson:"images"`
	Sizes       []string           `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors      []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

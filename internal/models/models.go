package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name"          json:"name"`
	Category string             `bson:"category"      json:"category"`
	Price    float64            `bson:"price"         json:"price"`
	Featured bool               `bson:"featured"      json:"featured"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username"      json:"username"`
	Email    string             `bson:"email"         json:"email"`
	Password string             `bson:"password"      json:"-"`
}

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id"       json:"user_id"`
	ProductID string             `bson:"product_id"    json:"product_id"`
	Quantity  int                `bson:"quantity"      json:"quantity"`
}

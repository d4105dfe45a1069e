package repo

import "go.mongodb.org/mongo-driver/mongo"

const (
	productsCollection = "products"
	usersCollection    = "users"
	cartCollection     = "cart_items"
)

type MongoRepo struct {
	DB *mongo.Database
}

package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

func (r *MongoRepo) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.DB.Collection(productsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]models.Product, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.Collection(productsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoRepo) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := r.DB.Collection(productsCollection).Find(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, err
	}

	items := make([]models.Product, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

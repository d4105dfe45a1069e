package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

// AddItem upserts on (user_id, product_id) with $inc, so repeated adds for
// the same pair accumulate into one document.
func (r *MongoRepo) AddItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	coll := r.DB.Collection(cartCollection)

	filter := bson.M{"user_id": item.UserID, "product_id": item.ProductID}
	update := bson.M{"$inc": bson.M{"quantity": item.Quantity}}

	if _, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, err
	}

	var out models.CartItem
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MongoRepo) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	cur, err := r.DB.Collection(cartCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	items := make([]models.CartItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

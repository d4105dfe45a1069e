package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

// FindByLogin matches the login value against username or email.
func (r *MongoRepo) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": login},
	}}

	var user models.User
	if err := r.DB.Collection(usersCollection).FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

package users

import (
	"context"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(client *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *UserMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := repo.Collection.InsertOne(ctx, user)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

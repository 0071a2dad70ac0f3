package accounts

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *AccountMongoRepository) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	if account.ID == "" {
		account.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, account)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return account.ID, nil
}

func (r *AccountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *AccountMongoRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"_id": accountID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

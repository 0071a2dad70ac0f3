package medicines

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Medicine, int, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicines := make([]models.Medicine, 0)
	err = cursor.All(ctx, &medicines)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, int(total), nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.Collection.FindOne(ctx, bson.M{"_id": medicineID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicine *models.Medicine) (string, error) {
	if medicine.ID == "" {
		medicine.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, medicine)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return medicine.ID, nil
}

func (r *MedicineMongoRepository) UpdateMedicine(ctx context.Context, medicine *models.Medicine) error {
	medicine.UpdatedAt = time.Now()
	filter := bson.M{"_id": medicine.ID}
	update := bson.M{"$set": medicine}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicineMongoRepository) DeleteByID(ctx context.Context, medicineID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": medicineID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *MedicineMongoRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

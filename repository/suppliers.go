package repository

import (
	"context"
	"errors"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SuppliersRepo struct {
	MongoCollection *mongo.Collection
}

func GetSuppliersRepo(client *mongo.Client) *SuppliersRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("SUPPLIERS_COLLECTION", "suppliers")
	return &SuppliersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SuppliersRepo) List(ctx context.Context) ([]*model.Supplier, error) {
	timer := utils.TrackDBOperation("find", "suppliers")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "supplier_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var suppliers []*model.Supplier
	if err = cursor.All(ctx, &suppliers); err != nil {
		utils.TrackError("database", "supplier_decode_failed")
		return nil, err
	}
	return suppliers, nil
}

func (r *SuppliersRepo) Get(ctx context.Context, supplierID string) (*model.Supplier, error) {
	timer := utils.TrackDBOperation("find", "suppliers")
	defer timer.ObserveDuration()

	var supplier model.Supplier
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": supplierID}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		utils.TrackError("database", "supplier_fetch_failed")
		return nil, err
	}
	return &supplier, nil
}

func (r *SuppliersRepo) Create(ctx context.Context, supplier *model.Supplier) error {
	timer := utils.TrackDBOperation("insert", "suppliers")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, supplier)
	if err != nil {
		utils.TrackError("database", "supplier_creation_failed")
		return err
	}
	return nil
}

func (r *SuppliersRepo) Update(ctx context.Context, supplier *model.Supplier) error {
	timer := utils.TrackDBOperation("update", "suppliers")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": supplier.SupplierID}, supplier)
	if err != nil {
		utils.TrackError("database", "supplier_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "supplier_not_found")
		return ErrSupplierNotFound
	}
	return nil
}

func (r *SuppliersRepo) Delete(ctx context.Context, supplierID string) error {
	timer := utils.TrackDBOperation("delete", "suppliers")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": supplierID})
	if err != nil {
		utils.TrackError("database", "supplier_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "supplier_not_found")
		return ErrSupplierNotFound
	}
	return nil
}

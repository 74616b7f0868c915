package repository

import (
	"context"
	"errors"

	"backoffice/model"
	"backoffice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings; zero-value fields are ignored.
type OrderFilter struct {
	LocationID string
	SupplierID string
	Month      string // "MM/YYYY"
}

type OrdersRepo struct {
	MongoCollection *mongo.Collection
}

func GetOrdersRepo(client *mongo.Client) *OrdersRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "backoffice")
	collectionName := utils.GetEnvAsString("ORDERS_COLLECTION", "orders")
	return &OrdersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *OrdersRepo) List(ctx context.Context, filter OrderFilter) ([]*model.Order, error) {
	timer := utils.TrackDBOperation("find", "orders")
	defer timer.ObserveDuration()

	query := bson.M{}
	if filter.LocationID != "" {
		query["location_id"] = filter.LocationID
	}
	if filter.SupplierID != "" {
		query["supplier_id"] = filter.SupplierID
	}
	if filter.Month != "" {
		query["month"] = filter.Month
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database", "order_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*model.Order
	if err = cursor.All(ctx, &orders); err != nil {
		utils.TrackError("database", "order_decode_failed")
		return nil, err
	}
	return orders, nil
}

func (r *OrdersRepo) Create(ctx context.Context, order *model.Order) error {
	timer := utils.TrackDBOperation("insert", "orders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, order)
	if err != nil {
		utils.TrackError("database", "order_creation_failed")
		return err
	}
	return nil
}

func (r *OrdersRepo) Delete(ctx context.Context, orderID string) error {
	timer := utils.TrackDBOperation("delete", "orders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		utils.TrackError("database", "order_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "order_not_found")
		return ErrOrderNotFound
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"
	"time"

	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"
	"campusmarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type deliveryRepository struct {
	collection *mongo.Collection
}

func NewDeliveryRepository(db *mongo.Database) interfaces.DeliveryRepository {
	return &deliveryRepository{
		collection: db.Collection(database.CollectionDeliveryRequests),
	}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *models.DeliveryRequest) error {
	now := time.Now()
	delivery.ID = primitive.NewObjectID()
	delivery.CreatedAt = now
	delivery.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, delivery)
	return translateError(err, "delivery request", "create delivery request")
}

func (r *deliveryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error) {
	var delivery models.DeliveryRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&delivery)
	if err != nil {
		return nil, translateError(err, "delivery request", "get delivery request")
	}
	return &delivery, nil
}

func (r *deliveryRepository) List(ctx context.Context, filter interfaces.DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	query := params.GetSearchFilter([]string{"name", "item_description", "pickup_point", "dropoff_point"})
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.DeliveryType != "" {
		query["delivery_type"] = filter.DeliveryType
	}
	if filter.AssignedRider != nil {
		query["assigned_rider"] = *filter.AssignedRider
	}
	return findPage[models.DeliveryRequest](ctx, r.collection, query, params, "delivery requests")
}

func (r *deliveryRepository) Transition(ctx context.Context, id primitive.ObjectID, from, to models.DeliveryStatus, fields map[string]interface{}) (*models.DeliveryRequest, error) {
	set := setWithTimestamp(fields, time.Now())
	set["status"] = to

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var delivery models.DeliveryRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&delivery)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrConditionNotMet
		}
		return nil, translateError(err, "delivery request", "update delivery status")
	}
	return &delivery, nil
}

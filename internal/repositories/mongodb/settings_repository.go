package mongodb

import (
	"context"
	"errors"
	"time"

	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type settingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) interfaces.SettingsRepository {
	return &settingsRepository{
		collection: db.Collection(database.CollectionSettings),
	}
}

func (r *settingsRepository) GetDeliverySettings(ctx context.Context) (*models.DeliverySettings, error) {
	var settings models.DeliverySettings
	err := r.collection.FindOne(ctx, bson.M{"_id": models.DeliverySettingsID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.DeliverySettings{ID: models.DeliverySettingsID}, nil
		}
		return nil, translateError(err, "delivery settings", "get delivery settings")
	}
	return &settings, nil
}

// SetDefaultRider replaces the default in a single upsert, so there is never
// more than one default rider.
func (r *settingsRepository) SetDefaultRider(ctx context.Context, riderID primitive.ObjectID) (*models.DeliverySettings, error) {
	update := bson.M{
		"$set": bson.M{"default_rider_id": riderID, "updated_at": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings models.DeliverySettings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": models.DeliverySettingsID}, update, opts).Decode(&settings)
	if err != nil {
		return nil, translateError(err, "delivery settings", "set default rider")
	}
	return &settings, nil
}

func (r *settingsRepository) ClearDefaultRider(ctx context.Context, riderID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": models.DeliverySettingsID, "default_rider_id": riderID}
	update := bson.M{
		"$unset": bson.M{"default_rider_id": ""},
		"$set":   bson.M{"updated_at": time.Now()},
		"$inc":   bson.M{"version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, translateError(err, "delivery settings", "clear default rider")
	}
	return result.ModifiedCount > 0, nil
}

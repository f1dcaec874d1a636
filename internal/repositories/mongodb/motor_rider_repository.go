package mongodb

import (
	"context"
	"fmt"
	"time"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"
	"campusmarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type motorRiderRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

// NewMotorRiderRepository caches code lookups when cache is non-nil.
func NewMotorRiderRepository(db *mongo.Database, cache services.CacheService) interfaces.MotorRiderRepository {
	return &motorRiderRepository{
		collection: db.Collection(database.CollectionMotorRiders),
		cache:      cache,
	}
}

func (r *motorRiderRepository) Create(ctx context.Context, rider *models.MotorRider) error {
	now := time.Now()
	rider.ID = primitive.NewObjectID()
	rider.CreatedAt = now
	rider.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, rider)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.DuplicateKey(fmt.Sprintf("rider code %s is already in use", rider.RiderCode), err)
		}
		return apperrors.Store("create motor rider", err)
	}
	return nil
}

func (r *motorRiderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error) {
	var rider models.MotorRider
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rider)
	if err != nil {
		return nil, translateError(err, "motor rider", "get motor rider")
	}
	return &rider, nil
}

func (r *motorRiderRepository) GetByCode(ctx context.Context, code string) (*models.MotorRider, error) {
	if rider := r.getRiderFromCache(ctx, code); rider != nil {
		return rider, nil
	}

	var rider models.MotorRider
	err := r.collection.FindOne(ctx, bson.M{"rider_code": code}).Decode(&rider)
	if err != nil {
		return nil, translateError(err, "motor rider", "get motor rider by code")
	}

	r.cacheRider(ctx, &rider)
	return &rider, nil
}

func (r *motorRiderRepository) List(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error) {
	query := params.GetSearchFilter([]string{"name", "rider_code", "plate_number"})
	if status != "" {
		query["status"] = status
	}
	return findPage[models.MotorRider](ctx, r.collection, query, params, "motor riders")
}

func (r *motorRiderRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var rider models.MotorRider
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": setWithTimestamp(updates, time.Now())}, opts).Decode(&rider)
	if err != nil {
		return nil, translateError(err, "motor rider", "update motor rider")
	}

	r.invalidateRiderCache(ctx, rider.RiderCode)
	return &rider, nil
}

func (r *motorRiderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var rider models.MotorRider
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&rider)
	if err != nil {
		return translateError(err, "motor rider", "delete motor rider")
	}

	r.invalidateRiderCache(ctx, rider.RiderCode)
	return nil
}

func (r *motorRiderRepository) cacheRider(ctx context.Context, rider *models.MotorRider) {
	if r.cache != nil && rider.RiderCode != "" {
		r.cache.Set(ctx, utils.CacheRiderCodePrefix+rider.RiderCode, rider, utils.RiderCodeTTL)
	}
}

func (r *motorRiderRepository) getRiderFromCache(ctx context.Context, code string) *models.MotorRider {
	if r.cache == nil {
		return nil
	}

	var rider models.MotorRider
	if err := r.cache.Get(ctx, utils.CacheRiderCodePrefix+code, &rider); err != nil {
		return nil
	}
	return &rider
}

func (r *motorRiderRepository) invalidateRiderCache(ctx context.Context, code string) {
	if r.cache != nil && code != "" {
		r.cache.Delete(ctx, utils.CacheRiderCodePrefix+code)
	}
}

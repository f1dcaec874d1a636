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

type rideRepository struct {
	collection *mongo.Collection
}

func NewRideRepository(db *mongo.Database) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection(database.CollectionRides),
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	now := time.Now()
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = now
	ride.UpdatedAt = now
	if ride.JoinedUsers == nil {
		ride.JoinedUsers = []models.JoinedUser{}
	}

	_, err := r.collection.InsertOne(ctx, ride)
	return translateError(err, "ride", "create ride")
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		return nil, translateError(err, "ride", "get ride")
	}
	return &ride, nil
}

func (r *rideRepository) List(ctx context.Context, filter interfaces.RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	query := params.GetSearchFilter([]string{"pickup_location", "destination", "creator_name"})
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Destination != "" {
		query["destination"] = filter.Destination
	}
	if filter.DepartureDate != "" {
		query["departure_date"] = filter.DepartureDate
	}
	return findPage[models.Ride](ctx, r.collection, query, params, "rides")
}

// Delete is idempotent: removing an absent ride is not an error.
func (r *rideRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return translateError(err, "ride", "delete ride")
}

func (r *rideRepository) ReserveSeats(ctx context.Context, id primitive.ObjectID, user models.JoinedUser) (*models.Ride, error) {
	filter := bson.M{
		"_id":                id,
		"status":             models.RideStatusActive,
		"available_seats":    bson.M{"$gte": user.SeatsNeeded},
		"joined_users.phone": bson.M{"$ne": user.Phone},
	}
	update := bson.M{
		"$inc":  bson.M{"available_seats": -user.SeatsNeeded},
		"$push": bson.M{"joined_users": user},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	return r.findOneAndUpdate(ctx, filter, update, "reserve seats")
}

func (r *rideRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RideStatus) (*models.Ride, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	return r.findOneAndUpdate(ctx, filter, update, "update ride status")
}

func (r *rideRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M, operation string) (*models.Ride, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ride models.Ride
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ride)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrConditionNotMet
		}
		return nil, translateError(err, "ride", operation)
	}
	return &ride, nil
}

package interfaces

import (
	"context"

	"campusmarket/internal/models"
	"campusmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideFilter struct {
	Status        models.RideStatus
	Destination   string
	DepartureDate string
}

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	List(ctx context.Context, filter RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ReserveSeats appends user and takes user.SeatsNeeded seats in one
	// conditional update. ErrConditionNotMet when the ride is missing, not
	// active, short of seats or already joined by user.Phone.
	ReserveSeats(ctx context.Context, id primitive.ObjectID, user models.JoinedUser) (*models.Ride, error)

	// UpdateStatus moves the ride from one status to another. ErrConditionNotMet
	// when the ride is not currently in from.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RideStatus) (*models.Ride, error)
}

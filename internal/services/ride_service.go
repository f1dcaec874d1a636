package services

import (
	"context"
	"errors"
	"time"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"
	"campusmarket/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxJoinAttempts bounds retries when a join loses a race but the re-read
// ride would have accepted it.
const maxJoinAttempts = 3

type RideService interface {
	CreateRide(ctx context.Context, input *CreateRideInput) (*models.Ride, error)
	GetRide(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	ListRides(ctx context.Context, filter interfaces.RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	JoinRide(ctx context.Context, id primitive.ObjectID, passenger models.JoinedUser) (*models.Ride, error)
	UpdateRideStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus, actor string) (*models.Ride, error)
	DeleteRide(ctx context.Context, id primitive.ObjectID, actor string) error
}

type CreateRideInput struct {
	CreatorName    string
	CreatorContact string
	PickupLocation string
	Destination    string
	DepartureDate  string
	DepartureTime  string
	Notes          string
	SeatsNeeded    int
}

type rideService struct {
	rideRepo interfaces.RideRepository
	logger   *logger.Logger
	audit    *logger.AuditLogger
}

func NewRideService(rideRepo interfaces.RideRepository, log *logger.Logger, audit *logger.AuditLogger) RideService {
	if log == nil {
		log = logger.NewNop()
	}
	if audit == nil {
		audit = logger.NewAuditLoggerFrom(log)
	}
	return &rideService{
		rideRepo: rideRepo,
		logger:   log,
		audit:    audit,
	}
}

func (s *rideService) CreateRide(ctx context.Context, input *CreateRideInput) (*models.Ride, error) {
	if err := validateSeats(input.SeatsNeeded); err != nil {
		return nil, err
	}

	ride := &models.Ride{
		CreatorName:    input.CreatorName,
		CreatorContact: utils.NormalizePhone(input.CreatorContact),
		PickupLocation: input.PickupLocation,
		Destination:    input.Destination,
		DepartureDate:  input.DepartureDate,
		DepartureTime:  input.DepartureTime,
		Notes:          input.Notes,
		TotalCapacity:  models.RideCapacity,
		CreatorSeats:   input.SeatsNeeded,
		AvailableSeats: models.RideCapacity - input.SeatsNeeded,
		JoinedUsers:    []models.JoinedUser{},
		Status:         models.RideStatusActive,
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogRideEvent(ride.ID, "ride_created", map[string]interface{}{
		"creator_seats":   ride.CreatorSeats,
		"available_seats": ride.AvailableSeats,
	})
	return ride, nil
}

func (s *rideService) GetRide(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	return s.rideRepo.GetByID(ctx, id)
}

func (s *rideService) ListRides(ctx context.Context, filter interfaces.RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return s.rideRepo.List(ctx, filter, params)
}

// JoinRide reserves seats with a single conditional update. When the update
// matches nothing the ride is re-read only to explain the rejection.
func (s *rideService) JoinRide(ctx context.Context, id primitive.ObjectID, passenger models.JoinedUser) (*models.Ride, error) {
	if err := validateSeats(passenger.SeatsNeeded); err != nil {
		return nil, err
	}
	passenger.Phone = utils.NormalizePhone(passenger.Phone)
	passenger.JoinedAt = time.Now()

	for attempt := 1; attempt <= maxJoinAttempts; attempt++ {
		ride, err := s.rideRepo.ReserveSeats(ctx, id, passenger)
		if err == nil {
			s.logger.WithContext(ctx).LogRideEvent(id, "ride_joined", map[string]interface{}{
				"seats":           passenger.SeatsNeeded,
				"available_seats": ride.AvailableSeats,
				"phone":           utils.MaskPhone(passenger.Phone),
			})
			return ride, nil
		}
		if !errors.Is(err, interfaces.ErrConditionNotMet) {
			return nil, err
		}

		current, err := s.rideRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if rejection := joinRejection(current, passenger); rejection != nil {
			return nil, rejection
		}

		s.logger.WithContext(ctx).WithRideID(id).WithField("attempt", attempt).Debug("join raced with another update, retrying")
	}

	return nil, apperrors.InvalidState("ride changed while joining, please try again")
}

// joinRejection explains why a reservation would not apply to ride, or
// returns nil if it now would.
func joinRejection(ride *models.Ride, passenger models.JoinedUser) error {
	switch {
	case ride.Status != models.RideStatusActive:
		return apperrors.InvalidState("ride is %s and no longer accepts passengers", ride.Status)
	case ride.AvailableSeats <= 0:
		return apperrors.Capacity("ride is full")
	case passenger.SeatsNeeded > ride.AvailableSeats:
		return apperrors.Capacity("only %d seat(s) available", ride.AvailableSeats)
	case ride.HasJoined(passenger.Phone):
		return apperrors.DuplicateJoin(passenger.Phone)
	}
	return nil
}

func (s *rideService) UpdateRideStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus, actor string) (*models.Ride, error) {
	current, err := s.rideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status != models.RideStatusActive {
		return nil, apperrors.InvalidState("ride is already %s", current.Status)
	}

	ride, err := s.rideRepo.UpdateStatus(ctx, id, current.Status, status)
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return nil, apperrors.InvalidState("ride status changed concurrently")
	}
	if err != nil {
		return nil, err
	}

	s.audit.LogAction(utils.ActionRideStatus, "ride", id, actor, map[string]interface{}{
		"from": current.Status,
		"to":   status,
	})
	return ride, nil
}

func (s *rideService) DeleteRide(ctx context.Context, id primitive.ObjectID, actor string) error {
	if err := s.rideRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogAction(utils.ActionDeleted, "ride", id, actor, nil)
	return nil
}

func validateSeats(seats int) error {
	if seats < 1 || seats > models.RideCapacity {
		return apperrors.Validation("seatsNeeded must be between 1 and %d", models.RideCapacity)
	}
	return nil
}

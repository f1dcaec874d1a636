package handlers

import (
	"context"

	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRideService struct {
	mock.Mock
}

func (m *MockRideService) CreateRide(ctx context.Context, input *services.CreateRideInput) (*models.Ride, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideService) GetRide(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideService) ListRides(ctx context.Context, filter interfaces.RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Ride), args.Get(1).(int64), args.Error(2)
}

func (m *MockRideService) JoinRide(ctx context.Context, id primitive.ObjectID, passenger models.JoinedUser) (*models.Ride, error) {
	args := m.Called(ctx, id, passenger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideService) UpdateRideStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus, actor string) (*models.Ride, error) {
	args := m.Called(ctx, id, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideService) DeleteRide(ctx context.Context, id primitive.ObjectID, actor string) error {
	return m.Called(ctx, id, actor).Error(0)
}

type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) delivery(args mock.Arguments) (*models.DeliveryRequest, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliveryRequest), args.Error(1)
}

func (m *MockDeliveryService) deliveries(args mock.Arguments) ([]*models.DeliveryRequest, int64, error) {
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.DeliveryRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockDeliveryService) CreateRequest(ctx context.Context, d *models.DeliveryRequest) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, d))
}

func (m *MockDeliveryService) GetRequest(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, id))
}

func (m *MockDeliveryService) ListRequests(ctx context.Context, filter interfaces.DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	return m.deliveries(m.Called(ctx, filter, params))
}

func (m *MockDeliveryService) Authorize(ctx context.Context, id primitive.ObjectID, authorizedBy string) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, id, authorizedBy))
}

func (m *MockDeliveryService) Assign(ctx context.Context, id, riderID primitive.ObjectID, actor string) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, id, riderID, actor))
}

func (m *MockDeliveryService) AssignDefault(ctx context.Context, id primitive.ObjectID, actor string) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, id, actor))
}

func (m *MockDeliveryService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DeliveryStatus, actor string) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, id, status, actor))
}

func (m *MockDeliveryService) ListForRiderCode(ctx context.Context, code string, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	return m.deliveries(m.Called(ctx, code, params))
}

func (m *MockDeliveryService) UpdateStatusByRider(ctx context.Context, code string, id primitive.ObjectID, status models.DeliveryStatus) (*models.DeliveryRequest, error) {
	return m.delivery(m.Called(ctx, code, id, status))
}

type MockMotorRiderService struct {
	mock.Mock
}

func (m *MockMotorRiderService) rider(args mock.Arguments) (*models.MotorRider, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MotorRider), args.Error(1)
}

func (m *MockMotorRiderService) CreateRider(ctx context.Context, rider *models.MotorRider) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx, rider))
}

func (m *MockMotorRiderService) GetRider(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx, id))
}

func (m *MockMotorRiderService) GetRiderByCode(ctx context.Context, code string) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx, code))
}

func (m *MockMotorRiderService) ListRiders(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error) {
	args := m.Called(ctx, status, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.MotorRider), args.Get(1).(int64), args.Error(2)
}

func (m *MockMotorRiderService) UpdateRider(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx, id, updates))
}

func (m *MockMotorRiderService) DeleteRider(ctx context.Context, id primitive.ObjectID, actor string) error {
	return m.Called(ctx, id, actor).Error(0)
}

func (m *MockMotorRiderService) SetDefaultRider(ctx context.Context, id primitive.ObjectID, actor string) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx, id, actor))
}

func (m *MockMotorRiderService) GetDefaultRider(ctx context.Context) (*models.MotorRider, error) {
	return m.rider(m.Called(ctx))
}

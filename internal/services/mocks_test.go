package services

import (
	"context"
	"time"

	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"
	"campusmarket/pkg/storage"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock Ride Repository
type MockRideRepo struct {
	mock.Mock
}

func (m *MockRideRepo) Create(ctx context.Context, ride *models.Ride) error {
	args := m.Called(ctx, ride)
	if ride.ID.IsZero() {
		ride.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockRideRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideRepo) List(ctx context.Context, filter interfaces.RideFilter, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Ride), args.Get(1).(int64), args.Error(2)
}

func (m *MockRideRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRideRepo) ReserveSeats(ctx context.Context, id primitive.ObjectID, user models.JoinedUser) (*models.Ride, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func (m *MockRideRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RideStatus) (*models.Ride, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

// Mock Delivery Repository
type MockDeliveryRepo struct {
	mock.Mock
}

func (m *MockDeliveryRepo) Create(ctx context.Context, delivery *models.DeliveryRequest) error {
	args := m.Called(ctx, delivery)
	if delivery.ID.IsZero() {
		delivery.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockDeliveryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliveryRequest), args.Error(1)
}

func (m *MockDeliveryRepo) List(ctx context.Context, filter interfaces.DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.DeliveryRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockDeliveryRepo) Transition(ctx context.Context, id primitive.ObjectID, from, to models.DeliveryStatus, fields map[string]interface{}) (*models.DeliveryRequest, error) {
	args := m.Called(ctx, id, from, to, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliveryRequest), args.Error(1)
}

// Mock Motor Rider Repository
type MockMotorRiderRepo struct {
	mock.Mock
}

func (m *MockMotorRiderRepo) Create(ctx context.Context, rider *models.MotorRider) error {
	args := m.Called(ctx, rider)
	if rider.ID.IsZero() {
		rider.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockMotorRiderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MotorRider), args.Error(1)
}

func (m *MockMotorRiderRepo) GetByCode(ctx context.Context, code string) (*models.MotorRider, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MotorRider), args.Error(1)
}

func (m *MockMotorRiderRepo) List(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error) {
	args := m.Called(ctx, status, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.MotorRider), args.Get(1).(int64), args.Error(2)
}

func (m *MockMotorRiderRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MotorRider), args.Error(1)
}

func (m *MockMotorRiderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock Settings Repository
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetDeliverySettings(ctx context.Context) (*models.DeliverySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliverySettings), args.Error(1)
}

func (m *MockSettingsRepo) SetDefaultRider(ctx context.Context, riderID primitive.ObjectID) (*models.DeliverySettings, error) {
	args := m.Called(ctx, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliverySettings), args.Error(1)
}

func (m *MockSettingsRepo) ClearDefaultRider(ctx context.Context, riderID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, riderID)
	return args.Bool(0), args.Error(1)
}

// Mock Vendor Repository
type MockVendorRepo struct {
	mock.Mock
}

func (m *MockVendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepo) List(ctx context.Context, filter interfaces.VendorFilter, params *utils.PaginationParams) ([]*models.Vendor, int64, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vendor, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

// Mock Category Repository
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Category, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock Notification Service
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyDeliveryRequested(ctx context.Context, delivery *models.DeliveryRequest) {
	m.Called(ctx, delivery)
}

func (m *MockNotifier) NotifyRiderAssigned(ctx context.Context, delivery *models.DeliveryRequest, rider *models.MotorRider) {
	m.Called(ctx, delivery, rider)
}

// Mock Storage Provider
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResponse), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) Name() string {
	return "mock"
}

// Mock Cache Service
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) (int64, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

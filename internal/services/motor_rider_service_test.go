package services

import (
	"context"
	"errors"
	"testing"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRiderService() (MotorRiderService, *MockMotorRiderRepo, *MockSettingsRepo) {
	riders := new(MockMotorRiderRepo)
	settings := new(MockSettingsRepo)
	return NewMotorRiderService(riders, settings, nil, nil), riders, settings
}

func TestCreateRider_GeneratesCode(t *testing.T) {
	ctx := context.Background()
	svc, riders, _ := newRiderService()
	riders.On("Create", ctx, mock.AnythingOfType("*models.MotorRider")).Return(nil)

	rider, err := svc.CreateRider(ctx, &models.MotorRider{Name: "Kofi Mensah", Phone: "0244123456"})
	require.NoError(t, err)
	assert.Equal(t, "KOF3456", rider.RiderCode)
	assert.Equal(t, models.MotorRiderStatusActive, rider.Status)
}

func TestCreateRider_KeepsSuppliedCode(t *testing.T) {
	ctx := context.Background()
	svc, riders, _ := newRiderService()
	riders.On("Create", ctx, mock.AnythingOfType("*models.MotorRider")).Return(nil)

	rider, err := svc.CreateRider(ctx, &models.MotorRider{Name: "Kofi Mensah", Phone: "0244123456", RiderCode: " kofi01 "})
	require.NoError(t, err)
	assert.Equal(t, "KOFI01", rider.RiderCode)
}

func TestCreateRider_CodeCollision(t *testing.T) {
	ctx := context.Background()
	svc, riders, _ := newRiderService()
	riders.On("Create", ctx, mock.Anything).
		Return(apperrors.DuplicateKey("rider code KOF3456 is already in use", errors.New("E11000")))

	_, err := svc.CreateRider(ctx, &models.MotorRider{Name: "Kofi Asante", Phone: "0209993456"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
	assert.Equal(t, 409, apperrors.StatusFor(apperrors.KindOf(err)))
	riders.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateRider_CannotDeriveCode(t *testing.T) {
	svc, riders, _ := newRiderService()

	_, err := svc.CreateRider(context.Background(), &models.MotorRider{Name: "Kofi", Phone: "12"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	riders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateRider_NeverRegeneratesCode(t *testing.T) {
	ctx := context.Background()
	svc, riders, settings := newRiderService()
	id := primitive.NewObjectID()

	riders.On("Update", ctx, id, mock.MatchedBy(func(u map[string]interface{}) bool {
		_, hasCode := u["rider_code"]
		return !hasCode && u["name"] == "Ama Owusu" && u["phone"] == "0501239999"
	})).Return(&models.MotorRider{ID: id, Name: "Ama Owusu", Phone: "0501239999", RiderCode: "KOF3456"}, nil)
	settings.On("GetDeliverySettings", ctx).Return(&models.DeliverySettings{ID: models.DeliverySettingsID}, nil)

	rider, err := svc.UpdateRider(ctx, id, map[string]interface{}{
		"name":       "Ama Owusu",
		"phone":      "050 123 9999",
		"rider_code": "AMA9999",
	})
	require.NoError(t, err)
	assert.Equal(t, "KOF3456", rider.RiderCode)
	riders.AssertExpectations(t)
}

func TestUpdateRider_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newRiderService()

	_, err := svc.UpdateRider(context.Background(), primitive.NewObjectID(), map[string]interface{}{"status": "asleep"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListRiders_MarksDefault(t *testing.T) {
	ctx := context.Background()
	svc, riders, settings := newRiderService()
	a, b := activeRider(), activeRider()

	riders.On("List", ctx, models.MotorRiderStatus(""), mock.Anything).Return([]*models.MotorRider{a, b}, int64(2), nil)
	settings.On("GetDeliverySettings", ctx).Return(&models.DeliverySettings{DefaultRiderID: &b.ID}, nil)

	list, total, err := svc.ListRiders(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.False(t, list[0].IsDefaultDeliveryRider)
	assert.True(t, list[1].IsDefaultDeliveryRider)
}

func TestSetDefaultRider(t *testing.T) {
	ctx := context.Background()

	t.Run("existing rider", func(t *testing.T) {
		svc, riders, settings := newRiderService()
		rider := activeRider()
		previous := primitive.NewObjectID()
		riders.On("GetByID", ctx, rider.ID).Return(rider, nil)
		settings.On("GetDeliverySettings", ctx).Return(&models.DeliverySettings{DefaultRiderID: &previous, Version: 1}, nil)
		settings.On("SetDefaultRider", ctx, rider.ID).Return(&models.DeliverySettings{DefaultRiderID: &rider.ID, Version: 2}, nil)

		got, err := svc.SetDefaultRider(ctx, rider.ID, "admin")
		require.NoError(t, err)
		assert.True(t, got.IsDefaultDeliveryRider)
		settings.AssertExpectations(t)
	})

	t.Run("settings read failure does not block", func(t *testing.T) {
		svc, riders, settings := newRiderService()
		rider := activeRider()
		riders.On("GetByID", ctx, rider.ID).Return(rider, nil)
		settings.On("GetDeliverySettings", ctx).Return(nil, apperrors.Store("get settings", errors.New("timeout")))
		settings.On("SetDefaultRider", ctx, rider.ID).Return(&models.DeliverySettings{DefaultRiderID: &rider.ID, Version: 1}, nil)

		got, err := svc.SetDefaultRider(ctx, rider.ID, "admin")
		require.NoError(t, err)
		assert.True(t, got.IsDefaultDeliveryRider)
	})

	t.Run("missing rider", func(t *testing.T) {
		svc, riders, settings := newRiderService()
		id := primitive.NewObjectID()
		riders.On("GetByID", ctx, id).Return(nil, apperrors.NotFound("motor rider"))

		_, err := svc.SetDefaultRider(ctx, id, "admin")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		settings.AssertNotCalled(t, "SetDefaultRider", mock.Anything, mock.Anything)
	})
}

func TestDeleteRider_ClearsDefault(t *testing.T) {
	ctx := context.Background()
	svc, riders, settings := newRiderService()
	id := primitive.NewObjectID()

	riders.On("Delete", ctx, id).Return(nil)
	settings.On("ClearDefaultRider", ctx, id).Return(true, nil)

	require.NoError(t, svc.DeleteRider(ctx, id, "admin"))
	settings.AssertExpectations(t)
}

func TestDeleteRider_ClearFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, riders, settings := newRiderService()
	id := primitive.NewObjectID()

	riders.On("Delete", ctx, id).Return(nil)
	settings.On("ClearDefaultRider", ctx, id).Return(false, apperrors.Store("clear default rider", errors.New("timeout")))

	assert.NoError(t, svc.DeleteRider(ctx, id, "admin"))
}

func TestGetDefaultRider_NoneConfigured(t *testing.T) {
	ctx := context.Background()
	svc, _, settings := newRiderService()
	settings.On("GetDeliverySettings", ctx).Return(&models.DeliverySettings{ID: models.DeliverySettingsID}, nil)

	_, err := svc.GetDefaultRider(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoDefault)
}

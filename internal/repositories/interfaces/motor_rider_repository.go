package interfaces

import (
	"context"

	"campusmarket/internal/models"
	"campusmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MotorRiderRepository interface {
	Create(ctx context.Context, rider *models.MotorRider) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error)
	GetByCode(ctx context.Context, code string) (*models.MotorRider, error)
	List(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SettingsRepository interface {
	// GetDeliverySettings returns an empty settings value when none was saved.
	GetDeliverySettings(ctx context.Context) (*models.DeliverySettings, error)
	SetDefaultRider(ctx context.Context, riderID primitive.ObjectID) (*models.DeliverySettings, error)
	// ClearDefaultRider unsets the default only if it still points at riderID.
	ClearDefaultRider(ctx context.Context, riderID primitive.ObjectID) (bool, error)
}

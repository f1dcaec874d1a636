package interfaces

import (
	"context"

	"campusmarket/internal/models"
	"campusmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryFilter struct {
	Status        models.DeliveryStatus
	DeliveryType  models.DeliveryType
	AssignedRider *primitive.ObjectID
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *models.DeliveryRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error)
	List(ctx context.Context, filter DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error)

	// Transition sets status to `to` plus the extra fields, only while the
	// delivery is still in `from`. ErrConditionNotMet otherwise.
	Transition(ctx context.Context, id primitive.ObjectID, from, to models.DeliveryStatus, fields map[string]interface{}) (*models.DeliveryRequest, error)
}

package interfaces

import (
	"context"

	"campusmarket/internal/models"
	"campusmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverFilter struct {
	Available *bool
}

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	List(ctx context.Context, filter DriverFilter, params *utils.PaginationParams) ([]*models.Driver, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VendorFilter struct {
	Category string
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	List(ctx context.Context, filter VendorFilter, params *utils.PaginationParams) ([]*models.Vendor, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vendor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Category, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

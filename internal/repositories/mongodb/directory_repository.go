package mongodb

import (
	"context"
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

// Drivers

type driverRepository struct {
	collection *mongo.Collection
}

func NewDriverRepository(db *mongo.Database) interfaces.DriverRepository {
	return &driverRepository{collection: db.Collection(database.CollectionDrivers)}
}

func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	now := time.Now()
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, driver)
	return translateError(err, "driver", "create driver")
}

func (r *driverRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	var driver models.Driver
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&driver); err != nil {
		return nil, translateError(err, "driver", "get driver")
	}
	return &driver, nil
}

func (r *driverRepository) List(ctx context.Context, filter interfaces.DriverFilter, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	query := params.GetSearchFilter([]string{"name", "service_area", "vehicle_type"})
	if filter.Available != nil {
		query["is_available"] = *filter.Available
	}
	return findPage[models.Driver](ctx, r.collection, query, params, "drivers")
}

func (r *driverRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error) {
	var driver models.Driver
	err := updateAndReturn(ctx, r.collection, id, updates, &driver)
	if err != nil {
		return nil, translateError(err, "driver", "update driver")
	}
	return &driver, nil
}

func (r *driverRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteExisting(ctx, r.collection, id, "driver")
}

// Vendors

type vendorRepository struct {
	collection *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) interfaces.VendorRepository {
	return &vendorRepository{collection: db.Collection(database.CollectionVendors)}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	now := time.Now()
	vendor.ID = primitive.NewObjectID()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, vendor)
	return translateError(err, "vendor", "create vendor")
}

func (r *vendorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor); err != nil {
		return nil, translateError(err, "vendor", "get vendor")
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, filter interfaces.VendorFilter, params *utils.PaginationParams) ([]*models.Vendor, int64, error) {
	query := params.GetSearchFilter([]string{"name", "location", "description"})
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	return findPage[models.Vendor](ctx, r.collection, query, params, "vendors")
}

func (r *vendorRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vendor, error) {
	var vendor models.Vendor
	err := updateAndReturn(ctx, r.collection, id, updates, &vendor)
	if err != nil {
		return nil, translateError(err, "vendor", "update vendor")
	}
	return &vendor, nil
}

func (r *vendorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteExisting(ctx, r.collection, id, "vendor")
}

func (r *vendorRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, translateError(err, "vendor", "count vendors")
	}
	return count, nil
}

// Categories

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) interfaces.CategoryRepository {
	return &categoryRepository{collection: db.Collection(database.CollectionCategories)}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, category)
	return translateError(err, "category", "create category")
}

func (r *categoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, translateError(err, "category", "get category")
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Category, int64, error) {
	query := params.GetSearchFilter([]string{"name", "description"})
	return findPage[models.Category](ctx, r.collection, query, params, "categories")
}

func (r *categoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error) {
	var category models.Category
	err := updateAndReturn(ctx, r.collection, id, updates, &category)
	if err != nil {
		return nil, translateError(err, "category", "update category")
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteExisting(ctx, r.collection, id, "category")
}

func updateAndReturn(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, updates map[string]interface{}, out interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": setWithTimestamp(updates, time.Now())}, opts).Decode(out)
}

func deleteExisting(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, resource string) error {
	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError(err, resource, "delete "+resource)
	}
	if result.DeletedCount == 0 {
		return translateError(mongo.ErrNoDocuments, resource, "delete "+resource)
	}
	return nil
}

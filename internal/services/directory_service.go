package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"
	"campusmarket/pkg/logger"
	"campusmarket/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DirectoryService covers the plain listings: drivers, vendors and vendor
// categories.
type DirectoryService interface {
	CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	ListDrivers(ctx context.Context, filter interfaces.DriverFilter, params *utils.PaginationParams) ([]*models.Driver, int64, error)
	UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id primitive.ObjectID, actor string) error

	CreateVendor(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error)
	GetVendor(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	ListVendors(ctx context.Context, filter interfaces.VendorFilter, params *utils.PaginationParams) ([]*models.Vendor, int64, error)
	UpdateVendor(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id primitive.ObjectID, actor string) error
	UploadVendorImage(ctx context.Context, id primitive.ObjectID, upload *ImageUpload) (*models.Vendor, error)

	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	ListCategories(ctx context.Context, params *utils.PaginationParams) ([]*models.Category, int64, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID, actor string) error
}

type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type directoryService struct {
	driverRepo   interfaces.DriverRepository
	vendorRepo   interfaces.VendorRepository
	categoryRepo interfaces.CategoryRepository
	storage      storage.StorageProvider
	cache        CacheService
	logger       *logger.Logger
	audit        *logger.AuditLogger
}

// NewDirectoryService wires the listing repositories. store and cache may be
// nil; image uploads then fail and vendor counts are read uncached.
func NewDirectoryService(
	driverRepo interfaces.DriverRepository,
	vendorRepo interfaces.VendorRepository,
	categoryRepo interfaces.CategoryRepository,
	store storage.StorageProvider,
	cache CacheService,
	log *logger.Logger,
	audit *logger.AuditLogger,
) DirectoryService {
	if log == nil {
		log = logger.NewNop()
	}
	if audit == nil {
		audit = logger.NewAuditLoggerFrom(log)
	}
	return &directoryService{
		driverRepo:   driverRepo,
		vendorRepo:   vendorRepo,
		categoryRepo: categoryRepo,
		storage:      store,
		cache:        cache,
		logger:       log,
		audit:        audit,
	}
}

// Drivers

func (s *directoryService) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	driver.Phone = utils.NormalizePhone(driver.Phone)
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *directoryService) GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *directoryService) ListDrivers(ctx context.Context, filter interfaces.DriverFilter, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	return s.driverRepo.List(ctx, filter, params)
}

func (s *directoryService) UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error) {
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}
	normalizePhoneField(updates)
	return s.driverRepo.Update(ctx, id, updates)
}

func (s *directoryService) DeleteDriver(ctx context.Context, id primitive.ObjectID, actor string) error {
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogAction(utils.ActionDeleted, "driver", id, actor, nil)
	return nil
}

// Vendors

func (s *directoryService) CreateVendor(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	vendor.Phone = utils.NormalizePhone(vendor.Phone)
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	s.invalidateCategoryCounts(ctx)
	return vendor, nil
}

func (s *directoryService) GetVendor(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	return s.vendorRepo.GetByID(ctx, id)
}

func (s *directoryService) ListVendors(ctx context.Context, filter interfaces.VendorFilter, params *utils.PaginationParams) ([]*models.Vendor, int64, error) {
	return s.vendorRepo.List(ctx, filter, params)
}

func (s *directoryService) UpdateVendor(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vendor, error) {
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}
	normalizePhoneField(updates)

	vendor, err := s.vendorRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if _, ok := updates["category"]; ok {
		s.invalidateCategoryCounts(ctx)
	}
	return vendor, nil
}

func (s *directoryService) DeleteVendor(ctx context.Context, id primitive.ObjectID, actor string) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCategoryCounts(ctx)
	s.deleteObject(ctx, vendor.ImageKey)
	s.audit.LogAction(utils.ActionDeleted, "vendor", id, actor, nil)
	return nil
}

// UploadVendorImage stores a new vendor image and replaces the previous one.
func (s *directoryService) UploadVendorImage(ctx context.Context, id primitive.ObjectID, upload *ImageUpload) (*models.Vendor, error) {
	if s.storage == nil {
		return nil, apperrors.Store("upload vendor image", errors.New("file storage is not configured"))
	}
	if !utils.IsAllowedFileType(upload.Filename, utils.AllowedImageTypes) {
		return nil, apperrors.Validation("unsupported image type %q", utils.GetFileExtension(upload.Filename))
	}
	if upload.Size <= 0 || upload.Size > utils.MaxImageSize {
		return nil, apperrors.Validation("image must be between 1 byte and %d bytes", utils.MaxImageSize)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("vendors/%s/%s", id.Hex(), utils.GenerateUniqueFilename(upload.Filename))
	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:          key,
		Reader:       upload.Reader,
		ContentType:  utils.GetContentType(upload.Filename),
		Size:         upload.Size,
		CacheControl: "public, max-age=86400",
		Metadata:     map[string]string{"vendor_id": id.Hex()},
	})
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("provider", s.storage.Name()).Error("vendor image upload failed")
		return nil, apperrors.Store("upload vendor image", err)
	}

	updated, err := s.vendorRepo.Update(ctx, id, map[string]interface{}{
		"image_url": resp.URL,
		"image_key": resp.Key,
	})
	if err != nil {
		s.deleteObject(ctx, resp.Key)
		return nil, err
	}

	if vendor.ImageKey != "" && vendor.ImageKey != resp.Key {
		s.deleteObject(ctx, vendor.ImageKey)
	}
	return updated, nil
}

// Categories

func (s *directoryService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *directoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.VendorCount = s.vendorCount(ctx, category.Name)
	return category, nil
}

// ListCategories returns categories with their vendor counts filled in.
func (s *directoryService) ListCategories(ctx context.Context, params *utils.PaginationParams) ([]*models.Category, int64, error) {
	categories, total, err := s.categoryRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range categories {
		c.VendorCount = s.vendorCount(ctx, c.Name)
	}
	return categories, total, nil
}

func (s *directoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error) {
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}
	category, err := s.categoryRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	category.VendorCount = s.vendorCount(ctx, category.Name)
	return category, nil
}

func (s *directoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID, actor string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogAction(utils.ActionDeleted, "category", id, actor, nil)
	return nil
}

// vendorCount reads through the cache. Count failures are logged and
// reported as zero so a listing never fails on a derived field.
func (s *directoryService) vendorCount(ctx context.Context, category string) int64 {
	key := utils.CacheCategoryCountPrefix + category
	if s.cache != nil {
		var cached int64
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached
		}
	}

	count, err := s.vendorRepo.CountByCategory(ctx, category)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("category", category).Warn("vendor count failed")
		return 0
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, count, utils.CategoryCountTTL)
	}
	return count
}

func (s *directoryService) invalidateCategoryCounts(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePattern(ctx, utils.CacheCategoryCountPrefix+"*")
}

func (s *directoryService) deleteObject(ctx context.Context, key string) {
	if s.storage == nil || key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("failed to delete stored object")
	}
}

func normalizePhoneField(updates map[string]interface{}) {
	if phone, ok := updates["phone"].(string); ok {
		updates["phone"] = utils.NormalizePhone(phone)
	}
}

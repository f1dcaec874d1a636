package services

import (
	"context"
	"errors"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"
	"campusmarket/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MotorRiderService interface {
	CreateRider(ctx context.Context, rider *models.MotorRider) (*models.MotorRider, error)
	GetRider(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error)
	GetRiderByCode(ctx context.Context, code string) (*models.MotorRider, error)
	ListRiders(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error)
	UpdateRider(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error)
	DeleteRider(ctx context.Context, id primitive.ObjectID, actor string) error

	SetDefaultRider(ctx context.Context, id primitive.ObjectID, actor string) (*models.MotorRider, error)
	GetDefaultRider(ctx context.Context) (*models.MotorRider, error)
}

type motorRiderService struct {
	riderRepo    interfaces.MotorRiderRepository
	settingsRepo interfaces.SettingsRepository
	logger       *logger.Logger
	audit        *logger.AuditLogger
}

func NewMotorRiderService(
	riderRepo interfaces.MotorRiderRepository,
	settingsRepo interfaces.SettingsRepository,
	log *logger.Logger,
	audit *logger.AuditLogger,
) MotorRiderService {
	if log == nil {
		log = logger.NewNop()
	}
	if audit == nil {
		audit = logger.NewAuditLoggerFrom(log)
	}
	return &motorRiderService{
		riderRepo:    riderRepo,
		settingsRepo: settingsRepo,
		logger:       log,
		audit:        audit,
	}
}

// CreateRider stores a new rider. A rider code is derived from name and phone
// unless one is supplied; either way it is stored upper-cased and must be
// unique.
func (s *motorRiderService) CreateRider(ctx context.Context, rider *models.MotorRider) (*models.MotorRider, error) {
	rider.Phone = utils.NormalizePhone(rider.Phone)

	if rider.RiderCode == "" {
		code, err := GenerateRiderCode(rider.Name, rider.Phone)
		if err != nil {
			return nil, err
		}
		rider.RiderCode = code
	} else {
		rider.RiderCode = normalizeRiderCode(rider.RiderCode)
	}

	if rider.Status == "" {
		rider.Status = models.MotorRiderStatusActive
	}
	if !rider.Status.IsValid() {
		return nil, apperrors.Validation("unknown rider status %q", rider.Status)
	}

	if err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"rider_id":   rider.ID.Hex(),
		"rider_code": rider.RiderCode,
	}).Info("motor rider created")
	return rider, nil
}

func (s *motorRiderService) GetRider(ctx context.Context, id primitive.ObjectID) (*models.MotorRider, error) {
	rider, err := s.riderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.markDefault(ctx, rider)
	return rider, nil
}

func (s *motorRiderService) GetRiderByCode(ctx context.Context, code string) (*models.MotorRider, error) {
	rider, err := s.riderRepo.GetByCode(ctx, normalizeRiderCode(code))
	if err != nil {
		return nil, err
	}
	s.markDefault(ctx, rider)
	return rider, nil
}

func (s *motorRiderService) ListRiders(ctx context.Context, status models.MotorRiderStatus, params *utils.PaginationParams) ([]*models.MotorRider, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.Validation("unknown rider status %q", status)
	}

	riders, total, err := s.riderRepo.List(ctx, status, params)
	if err != nil {
		return nil, 0, err
	}
	s.markDefault(ctx, riders...)
	return riders, total, nil
}

// UpdateRider applies a partial update. The rider code is never regenerated,
// even when name or phone change.
func (s *motorRiderService) UpdateRider(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MotorRider, error) {
	delete(updates, "rider_code")
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}
	if status, ok := updates["status"]; ok {
		var st models.MotorRiderStatus
		switch v := status.(type) {
		case models.MotorRiderStatus:
			st = v
		case string:
			st = models.MotorRiderStatus(v)
		}
		if !st.IsValid() {
			return nil, apperrors.Validation("unknown rider status %q", st)
		}
	}
	if phone, ok := updates["phone"].(string); ok {
		updates["phone"] = utils.NormalizePhone(phone)
	}

	rider, err := s.riderRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.markDefault(ctx, rider)
	return rider, nil
}

func (s *motorRiderService) DeleteRider(ctx context.Context, id primitive.ObjectID, actor string) error {
	if err := s.riderRepo.Delete(ctx, id); err != nil {
		return err
	}

	cleared, err := s.settingsRepo.ClearDefaultRider(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("rider_id", id.Hex()).
			Warn("failed to clear default rider after delete")
	}

	s.audit.LogAction(utils.ActionDeleted, "motor_rider", id, actor, map[string]interface{}{
		"was_default": cleared,
	})
	return nil
}

func (s *motorRiderService) SetDefaultRider(ctx context.Context, id primitive.ObjectID, actor string) (*models.MotorRider, error) {
	rider, err := s.riderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := ""
	if current, err := s.settingsRepo.GetDeliverySettings(ctx); err == nil && current.DefaultRiderID != nil {
		previous = current.DefaultRiderID.Hex()
	}

	settings, err := s.settingsRepo.SetDefaultRider(ctx, id)
	if err != nil {
		return nil, err
	}

	rider.IsDefaultDeliveryRider = true
	s.audit.LogAction(utils.ActionDefaultRiderSet, "delivery_settings", id, actor, map[string]interface{}{
		"version": settings.Version,
	})
	s.audit.LogConfigChange("delivery.default_rider_id", previous, id.Hex(), actor)
	return rider, nil
}

// GetDefaultRider returns the configured default rider, or a NoDefaultRider
// error when none is set or the stored rider no longer exists.
func (s *motorRiderService) GetDefaultRider(ctx context.Context) (*models.MotorRider, error) {
	settings, err := s.settingsRepo.GetDeliverySettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings.DefaultRiderID == nil {
		return nil, apperrors.NoDefaultRider()
	}

	rider, err := s.riderRepo.GetByID(ctx, *settings.DefaultRiderID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NoDefaultRider()
	}
	if err != nil {
		return nil, err
	}
	rider.IsDefaultDeliveryRider = true
	return rider, nil
}

// markDefault sets IsDefaultDeliveryRider from the settings document. A
// settings read failure leaves every flag false.
func (s *motorRiderService) markDefault(ctx context.Context, riders ...*models.MotorRider) {
	settings, err := s.settingsRepo.GetDeliverySettings(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("failed to read delivery settings")
		return
	}
	if settings.DefaultRiderID == nil {
		return
	}
	for _, r := range riders {
		r.IsDefaultDeliveryRider = r.ID == *settings.DefaultRiderID
	}
}

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

type DeliveryService interface {
	CreateRequest(ctx context.Context, delivery *models.DeliveryRequest) (*models.DeliveryRequest, error)
	GetRequest(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error)
	ListRequests(ctx context.Context, filter interfaces.DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error)

	Authorize(ctx context.Context, id primitive.ObjectID, authorizedBy string) (*models.DeliveryRequest, error)
	Assign(ctx context.Context, id, riderID primitive.ObjectID, actor string) (*models.DeliveryRequest, error)
	AssignDefault(ctx context.Context, id primitive.ObjectID, actor string) (*models.DeliveryRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DeliveryStatus, actor string) (*models.DeliveryRequest, error)

	// Rider status page, addressed by rider code.
	ListForRiderCode(ctx context.Context, code string, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error)
	UpdateStatusByRider(ctx context.Context, code string, id primitive.ObjectID, status models.DeliveryStatus) (*models.DeliveryRequest, error)
}

type deliveryService struct {
	deliveryRepo  interfaces.DeliveryRepository
	riderRepo     interfaces.MotorRiderRepository
	settingsRepo  interfaces.SettingsRepository
	notifications NotificationService
	logger        *logger.Logger
	audit         *logger.AuditLogger
	now           func() time.Time
}

func NewDeliveryService(
	deliveryRepo interfaces.DeliveryRepository,
	riderRepo interfaces.MotorRiderRepository,
	settingsRepo interfaces.SettingsRepository,
	notifications NotificationService,
	log *logger.Logger,
	audit *logger.AuditLogger,
) DeliveryService {
	if log == nil {
		log = logger.NewNop()
	}
	if audit == nil {
		audit = logger.NewAuditLoggerFrom(log)
	}
	if notifications == nil {
		notifications = NewNotificationService(NotificationConfig{}, nil, nil, log)
	}
	return &deliveryService{
		deliveryRepo:  deliveryRepo,
		riderRepo:     riderRepo,
		settingsRepo:  settingsRepo,
		notifications: notifications,
		logger:        log,
		audit:         audit,
		now:           time.Now,
	}
}

func (s *deliveryService) CreateRequest(ctx context.Context, delivery *models.DeliveryRequest) (*models.DeliveryRequest, error) {
	if !delivery.DeliveryType.IsValid() {
		return nil, apperrors.Validation("unknown delivery type %q", delivery.DeliveryType)
	}

	delivery.Status = models.DeliveryStatusPending
	delivery.Contact = utils.NormalizePhone(delivery.Contact)
	delivery.AssignedRider = nil
	delivery.AssignedRiderName = ""

	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogDeliveryEvent(delivery.ID, "delivery_requested", map[string]interface{}{
		"delivery_type": delivery.DeliveryType,
	})
	s.notifications.NotifyDeliveryRequested(ctx, delivery)
	return delivery, nil
}

func (s *deliveryService) GetRequest(ctx context.Context, id primitive.ObjectID) (*models.DeliveryRequest, error) {
	return s.deliveryRepo.GetByID(ctx, id)
}

func (s *deliveryService) ListRequests(ctx context.Context, filter interfaces.DeliveryFilter, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	return s.deliveryRepo.List(ctx, filter, params)
}

func (s *deliveryService) Authorize(ctx context.Context, id primitive.ObjectID, authorizedBy string) (*models.DeliveryRequest, error) {
	if authorizedBy == "" {
		return nil, apperrors.Validation("authorizedBy is required")
	}

	current, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	delivery, err := s.transition(ctx, current, models.DeliveryStatusAuthorized, map[string]interface{}{
		"authorized_by": authorizedBy,
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogAction(utils.ActionDeliveryAuthorized, "delivery_request", id, authorizedBy, nil)
	return delivery, nil
}

func (s *deliveryService) Assign(ctx context.Context, id, riderID primitive.ObjectID, actor string) (*models.DeliveryRequest, error) {
	current, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, models.DeliveryStatusAssigned) {
		return nil, invalidTransition(current.Status, models.DeliveryStatusAssigned)
	}

	rider, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}

	return s.assignRider(ctx, current, rider, actor)
}

func (s *deliveryService) AssignDefault(ctx context.Context, id primitive.ObjectID, actor string) (*models.DeliveryRequest, error) {
	current, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, models.DeliveryStatusAssigned) {
		return nil, invalidTransition(current.Status, models.DeliveryStatusAssigned)
	}

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

	return s.assignRider(ctx, current, rider, actor)
}

func (s *deliveryService) assignRider(ctx context.Context, current *models.DeliveryRequest, rider *models.MotorRider, actor string) (*models.DeliveryRequest, error) {
	if rider.Status != models.MotorRiderStatusActive {
		return nil, apperrors.NotFound("active motor rider")
	}

	delivery, err := s.transition(ctx, current, models.DeliveryStatusAssigned, map[string]interface{}{
		"assigned_rider":      rider.ID,
		"assigned_rider_name": rider.Name,
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogAction(utils.ActionDeliveryAssigned, "delivery_request", delivery.ID, actor, map[string]interface{}{
		"rider_id":   rider.ID.Hex(),
		"rider_code": rider.RiderCode,
	})
	s.notifications.NotifyRiderAssigned(ctx, delivery, rider)
	return delivery, nil
}

func (s *deliveryService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DeliveryStatus, actor string) (*models.DeliveryRequest, error) {
	current, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !plainStatusUpdate(status) {
		return nil, apperrors.InvalidState("status %s cannot be set directly; use PUT /delivery/admin/:id/authorize or /assign", status)
	}

	delivery, err := s.transition(ctx, current, status, nil)
	if err != nil {
		return nil, err
	}

	s.audit.LogAction(utils.ActionDeliveryStatus, "delivery_request", id, actor, map[string]interface{}{
		"from": current.Status,
		"to":   status,
	})
	return delivery, nil
}

func (s *deliveryService) ListForRiderCode(ctx context.Context, code string, params *utils.PaginationParams) ([]*models.DeliveryRequest, int64, error) {
	rider, err := s.riderRepo.GetByCode(ctx, normalizeRiderCode(code))
	if err != nil {
		return nil, 0, err
	}
	return s.deliveryRepo.List(ctx, interfaces.DeliveryFilter{AssignedRider: &rider.ID}, params)
}

// UpdateStatusByRider lets a rider start or complete a delivery assigned to
// them. Deliveries assigned elsewhere are reported as missing.
func (s *deliveryService) UpdateStatusByRider(ctx context.Context, code string, id primitive.ObjectID, status models.DeliveryStatus) (*models.DeliveryRequest, error) {
	rider, err := s.riderRepo.GetByCode(ctx, normalizeRiderCode(code))
	if err != nil {
		return nil, err
	}

	current, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.AssignedRider == nil || *current.AssignedRider != rider.ID {
		return nil, apperrors.NotFound("delivery request")
	}
	if status != models.DeliveryStatusInProgress && status != models.DeliveryStatusDelivered {
		return nil, apperrors.InvalidState("riders may only start or complete a delivery")
	}

	delivery, err := s.transition(ctx, current, status, nil)
	if err != nil {
		return nil, err
	}

	s.audit.LogAction(utils.ActionDeliveryStatus, "delivery_request", id, "rider:"+rider.RiderCode, map[string]interface{}{
		"from": current.Status,
		"to":   status,
	})
	return delivery, nil
}

// transition checks the lifecycle table and applies a guarded update keyed on
// the status that was read.
func (s *deliveryService) transition(ctx context.Context, current *models.DeliveryRequest, to models.DeliveryStatus, fields map[string]interface{}) (*models.DeliveryRequest, error) {
	if !CanTransition(current.Status, to) {
		return nil, invalidTransition(current.Status, to)
	}

	set := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	if field := statusTimestampField(to); field != "" {
		set[field] = s.now()
	}

	delivery, err := s.deliveryRepo.Transition(ctx, current.ID, current.Status, to, set)
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return nil, apperrors.InvalidState("delivery is no longer %s", current.Status)
	}
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogDeliveryEvent(delivery.ID, "status_changed", map[string]interface{}{
		"from": current.Status,
		"to":   to,
	})
	return delivery, nil
}

func invalidTransition(from, to models.DeliveryStatus) error {
	return apperrors.InvalidState("cannot move delivery from %s to %s", from, to)
}

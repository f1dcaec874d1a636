package utils

import "time"

// Application Constants
const (
	AppName = "CampusMarket"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	UserTypeAdmin     = "admin"
	AdminTokenTTL     = 12 * time.Hour
	BearerTokenPrefix = "Bearer "

	// File Upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	// Cache
	CategoryCountTTL = time.Minute
	RiderCodeTTL     = 5 * time.Minute
)

var AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp"}

// HTTP Status Messages
const (
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrInvalidToken     = "invalid token"
	ErrValidationFailed = "validation failed"
	ErrFileUploadFailed = "file upload failed"
	ErrInvalidID        = "invalid id"
)

// Cache Keys
const (
	CacheCategoryCountPrefix = "category_count:"
	CacheRiderCodePrefix     = "rider_code:"
)

// Audit actions
const (
	ActionDeliveryAuthorized = "delivery.authorize"
	ActionDeliveryAssigned   = "delivery.assign"
	ActionDeliveryStatus     = "delivery.status"
	ActionDefaultRiderSet    = "motor_rider.set_default"
	ActionRideStatus         = "ride.status"
	ActionDeleted            = "delete"
)

// Gin context keys set by middleware
const (
	ContextUserID    = "user_id"
	ContextUserType  = "user_type"
	ContextActor     = "actor"
	ContextRequestID = "request_id"
)

package services

import "campusmarket/internal/models"

var deliveryTransitions = map[models.DeliveryStatus][]models.DeliveryStatus{
	models.DeliveryStatusPending:    {models.DeliveryStatusAuthorized, models.DeliveryStatusCancelled},
	models.DeliveryStatusAuthorized: {models.DeliveryStatusAssigned, models.DeliveryStatusCancelled},
	models.DeliveryStatusAssigned:   {models.DeliveryStatusInProgress, models.DeliveryStatusCancelled},
	models.DeliveryStatusInProgress: {models.DeliveryStatusDelivered},
}

// CanTransition reports whether the lifecycle allows from -> to.
func CanTransition(from, to models.DeliveryStatus) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// statusTimestampField names the timestamp recorded when entering a status.
func statusTimestampField(status models.DeliveryStatus) string {
	switch status {
	case models.DeliveryStatusAuthorized:
		return "authorized_at"
	case models.DeliveryStatusAssigned:
		return "assigned_at"
	case models.DeliveryStatusInProgress:
		return "started_at"
	case models.DeliveryStatusDelivered:
		return "delivered_at"
	case models.DeliveryStatusCancelled:
		return "cancelled_at"
	}
	return ""
}

// plainStatusUpdate lists the targets that carry no payload and may be set
// through a bare status change. Authorize and assign have their own calls.
func plainStatusUpdate(status models.DeliveryStatus) bool {
	switch status {
	case models.DeliveryStatusInProgress, models.DeliveryStatusDelivered, models.DeliveryStatusCancelled:
		return true
	}
	return false
}

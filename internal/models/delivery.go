package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryStatus string
type DeliveryType string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusAuthorized DeliveryStatus = "authorized"
	DeliveryStatusAssigned   DeliveryStatus = "assigned"
	DeliveryStatusInProgress DeliveryStatus = "in-progress"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusCancelled  DeliveryStatus = "cancelled"

	DeliveryTypeInstant       DeliveryType = "instant"
	DeliveryTypeNextDay       DeliveryType = "next-day"
	DeliveryTypeWeeklyStation DeliveryType = "weekly-station"
)

type DeliveryRequest struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name              string              `json:"name" bson:"name"`
	Contact           string              `json:"contact" bson:"contact"`
	Email             string              `json:"email,omitempty" bson:"email,omitempty"`
	ItemDescription   string              `json:"itemDescription" bson:"item_description"`
	PickupPoint       string              `json:"pickupPoint" bson:"pickup_point"`
	DropoffPoint      string              `json:"dropoffPoint" bson:"dropoff_point"`
	DeliveryType      DeliveryType        `json:"deliveryType" bson:"delivery_type"`
	Notes             string              `json:"notes,omitempty" bson:"notes,omitempty"`
	Status            DeliveryStatus      `json:"status" bson:"status"`
	AssignedRider     *primitive.ObjectID `json:"assignedRider,omitempty" bson:"assigned_rider,omitempty"`
	AssignedRiderName string              `json:"assignedRiderName,omitempty" bson:"assigned_rider_name,omitempty"`
	AuthorizedBy      string              `json:"authorizedBy,omitempty" bson:"authorized_by,omitempty"`
	AuthorizedAt      *time.Time          `json:"authorizedAt,omitempty" bson:"authorized_at,omitempty"`
	AssignedAt        *time.Time          `json:"assignedAt,omitempty" bson:"assigned_at,omitempty"`
	StartedAt         *time.Time          `json:"startedAt,omitempty" bson:"started_at,omitempty"`
	DeliveredAt       *time.Time          `json:"deliveredAt,omitempty" bson:"delivered_at,omitempty"`
	CancelledAt       *time.Time          `json:"cancelledAt,omitempty" bson:"cancelled_at,omitempty"`
	CreatedAt         time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updated_at"`
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusAuthorized, DeliveryStatusAssigned,
		DeliveryStatusInProgress, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusCancelled
}

func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypeInstant, DeliveryTypeNextDay, DeliveryTypeWeeklyStation:
		return true
	}
	return false
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MotorRiderStatus string

const (
	MotorRiderStatusActive   MotorRiderStatus = "active"
	MotorRiderStatusInactive MotorRiderStatus = "inactive"
	MotorRiderStatusBusy     MotorRiderStatus = "busy"
)

type MotorRider struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                string             `json:"name" bson:"name"`
	Phone               string             `json:"phone" bson:"phone"`
	WhatsApp            string             `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	MotorcycleType      string             `json:"motorcycleType,omitempty" bson:"motorcycle_type,omitempty"`
	PlateNumber         string             `json:"plateNumber,omitempty" bson:"plate_number,omitempty"`
	RiderCode           string             `json:"riderCode" bson:"rider_code"`
	Rating              float64            `json:"rating" bson:"rating"`
	CompletedDeliveries int64              `json:"completedDeliveries" bson:"completed_deliveries"`
	Status              MotorRiderStatus   `json:"status" bson:"status"`
	CreatedAt           time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updated_at"`

	// Derived from the delivery settings document on read.
	IsDefaultDeliveryRider bool `json:"isDefaultDeliveryRider" bson:"-"`
}

func (s MotorRiderStatus) IsValid() bool {
	switch s {
	case MotorRiderStatusActive, MotorRiderStatusInactive, MotorRiderStatusBusy:
		return true
	}
	return false
}

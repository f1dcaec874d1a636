package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DeliverySettingsID = "delivery"

// DeliverySettings is the single configuration document that names the
// fallback rider used by assign-default.
type DeliverySettings struct {
	ID             string              `json:"id" bson:"_id"`
	DefaultRiderID *primitive.ObjectID `json:"defaultRiderId,omitempty" bson:"default_rider_id,omitempty"`
	Version        int64               `json:"version" bson:"version"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updated_at"`
}

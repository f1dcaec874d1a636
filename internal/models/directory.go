package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Driver struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Phone       string             `json:"phone" bson:"phone"`
	WhatsApp    string             `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	VehicleType string             `json:"vehicleType,omitempty" bson:"vehicle_type,omitempty"`
	PlateNumber string             `json:"plateNumber,omitempty" bson:"plate_number,omitempty"`
	ServiceArea string             `json:"serviceArea,omitempty" bson:"service_area,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	IsAvailable bool               `json:"isAvailable" bson:"is_available"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

type Vendor struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Phone       string             `json:"phone" bson:"phone"`
	WhatsApp    string             `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	ImageKey    string             `json:"-" bson:"image_key,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string             `json:"icon,omitempty" bson:"icon,omitempty"`
	VendorCount int64              `json:"vendorCount" bson:"-"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

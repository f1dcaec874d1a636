package validators

import (
	"go.mongodb.org/mongo-driver/bson"

	"campusmarket/internal/models"
)

type CreateMotorRiderRequest struct {
	Name           string                  `json:"name" validate:"required,min=2,max=100"`
	Phone          string                  `json:"phone" validate:"required,phone_number"`
	WhatsApp       string                  `json:"whatsapp" validate:"omitempty,phone_number"`
	MotorcycleType string                  `json:"motorcycleType" validate:"omitempty,max=50"`
	PlateNumber    string                  `json:"plateNumber" validate:"omitempty,max=20"`
	RiderCode      string                  `json:"riderCode" validate:"omitempty,alphanum,min=4,max=12"`
	Rating         float64                 `json:"rating" validate:"omitempty,rating_value"`
	Status         models.MotorRiderStatus `json:"status" validate:"omitempty,oneof=active inactive busy"`
}

// UpdateMotorRiderRequest leaves riderCode out: codes are fixed once issued.
type UpdateMotorRiderRequest struct {
	Name                *string                  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone               *string                  `json:"phone" validate:"omitempty,phone_number"`
	WhatsApp            *string                  `json:"whatsapp" validate:"omitempty,phone_number"`
	MotorcycleType      *string                  `json:"motorcycleType" validate:"omitempty,max=50"`
	PlateNumber         *string                  `json:"plateNumber" validate:"omitempty,max=20"`
	Rating              *float64                 `json:"rating" validate:"omitempty,rating_value"`
	CompletedDeliveries *int64                   `json:"completedDeliveries" validate:"omitempty,min=0"`
	Status              *models.MotorRiderStatus `json:"status" validate:"omitempty,oneof=active inactive busy"`
}

func ValidateCreateMotorRider(req *CreateMotorRiderRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdateMotorRider(req *UpdateMotorRiderRequest) ValidationErrors {
	return ValidateUpdate(req)
}

// Updates returns the $set document for the fields present in the request.
func (r *UpdateMotorRiderRequest) Updates() bson.M {
	set := bson.M{}
	setString(set, "name", r.Name)
	setString(set, "phone", r.Phone)
	setString(set, "whatsapp", r.WhatsApp)
	setString(set, "motorcycle_type", r.MotorcycleType)
	setString(set, "plate_number", r.PlateNumber)
	if r.Rating != nil {
		set["rating"] = *r.Rating
	}
	if r.CompletedDeliveries != nil {
		set["completed_deliveries"] = *r.CompletedDeliveries
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	return set
}

func setString(set bson.M, key string, value *string) {
	if value != nil {
		set[key] = *value
	}
}

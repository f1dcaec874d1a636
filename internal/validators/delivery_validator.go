package validators

import "campusmarket/internal/models"

type CreateDeliveryRequest struct {
	Name            string              `json:"name" validate:"required,min=2,max=100"`
	Contact         string              `json:"contact" validate:"required,phone_number"`
	Email           string              `json:"email" validate:"omitempty,email"`
	ItemDescription string              `json:"itemDescription" validate:"required,max=500"`
	PickupPoint     string              `json:"pickupPoint" validate:"required,max=200"`
	DropoffPoint    string              `json:"dropoffPoint" validate:"required,max=200"`
	DeliveryType    models.DeliveryType `json:"deliveryType" validate:"required,oneof=instant next-day weekly-station"`
	Notes           string              `json:"notes" validate:"omitempty,max=500"`
}

type AuthorizeDeliveryRequest struct {
	AuthorizedBy string `json:"authorizedBy" validate:"required,max=100"`
}

type AssignDeliveryRequest struct {
	RiderID string `json:"riderId" validate:"required,object_id"`
}

type UpdateDeliveryStatusRequest struct {
	Status models.DeliveryStatus `json:"status" validate:"required,oneof=pending authorized assigned in-progress delivered cancelled"`
}

func ValidateCreateDelivery(req *CreateDeliveryRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAuthorizeDelivery(req *AuthorizeDeliveryRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAssignDelivery(req *AssignDeliveryRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateDeliveryStatus(req *UpdateDeliveryStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}

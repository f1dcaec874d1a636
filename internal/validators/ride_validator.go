package validators

import (
	"strings"

	"campusmarket/internal/models"
)

type CreateRideRequest struct {
	Name           string    `json:"name" validate:"required,min=2,max=100"`
	Contact        string    `json:"contact" validate:"required,phone_number"`
	PickupLocation string    `json:"pickupLocation" validate:"required,max=200"`
	Destination    string    `json:"destination" validate:"required,max=200"`
	DepartureDate  string    `json:"departureDate" validate:"required,max=40"`
	DepartureTime  string    `json:"departureTime" validate:"required,max=40"`
	SeatsNeeded    SeatCount `json:"seatsNeeded"`
	Notes          string    `json:"notes" validate:"omitempty,max=500"`
}

type JoinRideRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Phone       string    `json:"phone" validate:"required,phone_number"`
	WhatsApp    string    `json:"whatsapp" validate:"omitempty,phone_number"`
	Email       string    `json:"email" validate:"omitempty,email"`
	SeatsNeeded SeatCount `json:"seatsNeeded"`
}

type UpdateRideStatusRequest struct {
	Status models.RideStatus `json:"status" validate:"required,oneof=active completed cancelled"`
}

func ValidateCreateRide(req *CreateRideRequest) ValidationErrors {
	errs := ValidateStruct(req)
	if strings.EqualFold(strings.TrimSpace(req.PickupLocation), strings.TrimSpace(req.Destination)) && req.PickupLocation != "" {
		errs = append(errs, ValidationError{
			Field:   "destination",
			Message: "Pickup location and destination must be different",
		})
	}
	if _, err := req.SeatsNeeded.Value(); err != nil {
		errs = append(errs, ValidationError{Field: "seatsNeeded", Tag: "range", Message: err.Error()})
	}
	return errs
}

func ValidateJoinRide(req *JoinRideRequest) ValidationErrors {
	errs := ValidateStruct(req)
	if _, err := req.SeatsNeeded.Value(); err != nil {
		errs = append(errs, ValidationError{Field: "seatsNeeded", Tag: "range", Message: err.Error()})
	}
	return errs
}

func ValidateRideStatus(req *UpdateRideStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}

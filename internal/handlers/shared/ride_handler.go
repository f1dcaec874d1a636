package handlers

import (
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"
	"campusmarket/internal/validators"
	"campusmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rideService services.RideService
	logger      *logger.Logger
}

func NewRideHandler(rideService services.RideService, log *logger.Logger) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		logger:      log,
	}
}

// CreateRide posts a new shared ride
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req validators.CreateRideRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreateRide(&req)) {
		return
	}
	seats, _ := req.SeatsNeeded.Value()

	ride, err := h.rideService.CreateRide(c.Request.Context(), &services.CreateRideInput{
		CreatorName:    req.Name,
		CreatorContact: req.Contact,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		DepartureDate:  req.DepartureDate,
		DepartureTime:  req.DepartureTime,
		Notes:          req.Notes,
		SeatsNeeded:    seats,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride created successfully", gin.H{"ride": ride})
}

// ListRides lists rides, active ones by default, soonest departure first
func (h *RideHandler) ListRides(c *gin.Context) {
	params := utils.GetPaginationParams(c, "departure_date", "departure_date", "created_at", "available_seats")
	if c.Query("order") == "" {
		params.Order = "asc"
	}

	filter := interfaces.RideFilter{
		Status:        models.RideStatus(c.DefaultQuery("status", string(models.RideStatusActive))),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("date"),
	}
	if c.Query("status") == "all" {
		filter.Status = ""
	}

	rides, total, err := h.rideService.ListRides(c.Request.Context(), filter, params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Rides retrieved successfully", gin.H{"rides": rides}, utils.CreatePaginationMeta(params, total))
}

func (h *RideHandler) GetRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ride, err := h.rideService.GetRide(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved successfully", gin.H{"ride": ride})
}

// JoinRide reserves seats on a ride for a passenger
func (h *RideHandler) JoinRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.JoinRideRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateJoinRide(&req)) {
		return
	}
	seats, _ := req.SeatsNeeded.Value()

	ride, err := h.rideService.JoinRide(c.Request.Context(), id, models.JoinedUser{
		Name:        req.Name,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Email:       req.Email,
		SeatsNeeded: seats,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Joined ride successfully", gin.H{"ride": ride})
}

func (h *RideHandler) UpdateRideStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateRideStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateRideStatus(&req)) {
		return
	}

	ride, err := h.rideService.UpdateRideStatus(c.Request.Context(), id, req.Status, actor(c))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride status updated successfully", gin.H{"ride": ride})
}

// DeleteRide removes a ride. Deleting a missing ride still succeeds.
func (h *RideHandler) DeleteRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.rideService.DeleteRide(c.Request.Context(), id, actor(c)); err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride deleted successfully", nil)
}

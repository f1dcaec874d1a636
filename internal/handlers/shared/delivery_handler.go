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

type DeliveryHandler struct {
	deliveryService services.DeliveryService
	logger          *logger.Logger
}

func NewDeliveryHandler(deliveryService services.DeliveryService, log *logger.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
		logger:          log,
	}
}

// CreateRequest records a new delivery request and notifies the admin
func (h *DeliveryHandler) CreateRequest(c *gin.Context) {
	var req validators.CreateDeliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreateDelivery(&req)) {
		return
	}

	delivery, err := h.deliveryService.CreateRequest(c.Request.Context(), &models.DeliveryRequest{
		Name:            req.Name,
		Contact:         req.Contact,
		Email:           req.Email,
		ItemDescription: req.ItemDescription,
		PickupPoint:     req.PickupPoint,
		DropoffPoint:    req.DropoffPoint,
		DeliveryType:    req.DeliveryType,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery request submitted successfully", gin.H{"requestId": delivery.ID.Hex()})
}

func (h *DeliveryHandler) GetRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	delivery, err := h.deliveryService.GetRequest(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery request retrieved successfully", gin.H{"delivery": delivery})
}

// ListRequests is the admin queue, newest first
func (h *DeliveryHandler) ListRequests(c *gin.Context) {
	params := utils.GetPaginationParams(c, "created_at", "created_at", "updated_at", "status")
	filter := interfaces.DeliveryFilter{
		Status:       models.DeliveryStatus(c.Query("status")),
		DeliveryType: models.DeliveryType(c.Query("deliveryType")),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		utils.BadRequestResponse(c, "unknown status "+string(filter.Status))
		return
	}

	deliveries, total, err := h.deliveryService.ListRequests(c.Request.Context(), filter, params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Delivery requests retrieved successfully", gin.H{"deliveries": deliveries}, utils.CreatePaginationMeta(params, total))
}

func (h *DeliveryHandler) Authorize(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.AuthorizeDeliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateAuthorizeDelivery(&req)) {
		return
	}

	delivery, err := h.deliveryService.Authorize(c.Request.Context(), id, req.AuthorizedBy)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery authorized successfully", gin.H{"delivery": delivery})
}

func (h *DeliveryHandler) Assign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.AssignDeliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateAssignDelivery(&req)) {
		return
	}
	riderID, _ := validators.ParseObjectID(req.RiderID)

	delivery, err := h.deliveryService.Assign(c.Request.Context(), id, riderID, actor(c))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery assigned successfully", gin.H{"delivery": delivery})
}

func (h *DeliveryHandler) AssignDefault(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	delivery, err := h.deliveryService.AssignDefault(c.Request.Context(), id, actor(c))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery assigned to default rider", gin.H{"delivery": delivery})
}

func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateDeliveryStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateDeliveryStatus(&req)) {
		return
	}

	delivery, err := h.deliveryService.UpdateStatus(c.Request.Context(), id, req.Status, actor(c))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery status updated successfully", gin.H{"delivery": delivery})
}

// ListForRider serves the rider status page
func (h *DeliveryHandler) ListForRider(c *gin.Context) {
	params := utils.GetPaginationParams(c, "assigned_at", "assigned_at", "created_at")

	deliveries, total, err := h.deliveryService.ListForRiderCode(c.Request.Context(), c.Param("code"), params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Deliveries retrieved successfully", gin.H{"deliveries": deliveries}, utils.CreatePaginationMeta(params, total))
}

func (h *DeliveryHandler) UpdateStatusByRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateDeliveryStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateDeliveryStatus(&req)) {
		return
	}

	delivery, err := h.deliveryService.UpdateStatusByRider(c.Request.Context(), c.Param("code"), id, req.Status)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Delivery status updated successfully", gin.H{"delivery": delivery})
}

package handlers

import (
	"campusmarket/internal/models"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"
	"campusmarket/internal/validators"
	"campusmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MotorRiderHandler struct {
	riderService services.MotorRiderService
	logger       *logger.Logger
}

func NewMotorRiderHandler(riderService services.MotorRiderService, log *logger.Logger) *MotorRiderHandler {
	return &MotorRiderHandler{
		riderService: riderService,
		logger:       log,
	}
}

func (h *MotorRiderHandler) CreateRider(c *gin.Context) {
	var req validators.CreateMotorRiderRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreateMotorRider(&req)) {
		return
	}

	rider, err := h.riderService.CreateRider(c.Request.Context(), &models.MotorRider{
		Name:           req.Name,
		Phone:          req.Phone,
		WhatsApp:       req.WhatsApp,
		MotorcycleType: req.MotorcycleType,
		PlateNumber:    req.PlateNumber,
		RiderCode:      req.RiderCode,
		Rating:         req.Rating,
		Status:         req.Status,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Motor rider created successfully", gin.H{"motorRider": rider})
}

func (h *MotorRiderHandler) ListRiders(c *gin.Context) {
	params := utils.GetPaginationParams(c, "created_at", "created_at", "name", "rating", "completed_deliveries")

	riders, total, err := h.riderService.ListRiders(c.Request.Context(), models.MotorRiderStatus(c.Query("status")), params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Motor riders retrieved successfully", gin.H{"motorRiders": riders}, utils.CreatePaginationMeta(params, total))
}

func (h *MotorRiderHandler) GetRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rider, err := h.riderService.GetRider(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Motor rider retrieved successfully", gin.H{"motorRider": rider})
}

func (h *MotorRiderHandler) GetRiderByCode(c *gin.Context) {
	rider, err := h.riderService.GetRiderByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Motor rider retrieved successfully", gin.H{"motorRider": rider})
}

func (h *MotorRiderHandler) GetDefaultRider(c *gin.Context) {
	rider, err := h.riderService.GetDefaultRider(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Default rider retrieved successfully", gin.H{"motorRider": rider})
}

// UpdateRider applies a partial update; the rider code cannot be changed
func (h *MotorRiderHandler) UpdateRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateMotorRiderRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateUpdateMotorRider(&req)) {
		return
	}

	rider, err := h.riderService.UpdateRider(c.Request.Context(), id, req.Updates())
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Motor rider updated successfully", gin.H{"motorRider": rider})
}

func (h *MotorRiderHandler) DeleteRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.riderService.DeleteRider(c.Request.Context(), id, actor(c)); err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Motor rider deleted successfully", nil)
}

func (h *MotorRiderHandler) SetDefaultRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rider, err := h.riderService.SetDefaultRider(c.Request.Context(), id, actor(c))
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Default delivery rider set successfully", gin.H{"motorRider": rider})
}

package handlers

import (
	"net/http"
	"strconv"

	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"
	"campusmarket/internal/validators"
	"campusmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves drivers, vendors and categories.
type DirectoryHandler struct {
	directoryService services.DirectoryService
	logger           *logger.Logger
}

func NewDirectoryHandler(directoryService services.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
		logger:           log,
	}
}

// Drivers

func (h *DirectoryHandler) CreateDriver(c *gin.Context) {
	var req validators.CreateDriverRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreate(&req)) {
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	driver, err := h.directoryService.CreateDriver(c.Request.Context(), &models.Driver{
		Name:        req.Name,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		VehicleType: req.VehicleType,
		PlateNumber: req.PlateNumber,
		ServiceArea: req.ServiceArea,
		Description: req.Description,
		Rating:      req.Rating,
		IsAvailable: available,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Driver created successfully", gin.H{"driver": driver})
}

func (h *DirectoryHandler) ListDrivers(c *gin.Context) {
	params := utils.GetPaginationParams(c, "rating", "rating", "name", "created_at")

	var filter interfaces.DriverFilter
	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			utils.BadRequestResponse(c, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	drivers, total, err := h.directoryService.ListDrivers(c.Request.Context(), filter, params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Drivers retrieved successfully", gin.H{"drivers": drivers}, utils.CreatePaginationMeta(params, total))
}

func (h *DirectoryHandler) GetDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	driver, err := h.directoryService.GetDriver(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Driver retrieved successfully", gin.H{"driver": driver})
}

func (h *DirectoryHandler) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateDriverRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateUpdate(&req)) {
		return
	}

	driver, err := h.directoryService.UpdateDriver(c.Request.Context(), id, req.Updates())
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Driver updated successfully", gin.H{"driver": driver})
}

func (h *DirectoryHandler) DeleteDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.directoryService.DeleteDriver(c.Request.Context(), id, actor(c)); err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Driver deleted successfully", nil)
}

// Vendors

func (h *DirectoryHandler) CreateVendor(c *gin.Context) {
	var req validators.CreateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreate(&req)) {
		return
	}

	vendor, err := h.directoryService.CreateVendor(c.Request.Context(), &models.Vendor{
		Name:        req.Name,
		Category:    req.Category,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Location:    req.Location,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vendor created successfully", gin.H{"vendor": vendor})
}

func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	params := utils.GetPaginationParams(c, "rating", "rating", "name", "created_at")
	filter := interfaces.VendorFilter{Category: c.Query("category")}

	vendors, total, err := h.directoryService.ListVendors(c.Request.Context(), filter, params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vendors retrieved successfully", gin.H{"vendors": vendors}, utils.CreatePaginationMeta(params, total))
}

func (h *DirectoryHandler) GetVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.directoryService.GetVendor(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vendor retrieved successfully", gin.H{"vendor": vendor})
}

func (h *DirectoryHandler) UpdateVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateUpdate(&req)) {
		return
	}

	vendor, err := h.directoryService.UpdateVendor(c.Request.Context(), id, req.Updates())
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vendor updated successfully", gin.H{"vendor": vendor})
}

func (h *DirectoryHandler) DeleteVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.directoryService.DeleteVendor(c.Request.Context(), id, actor(c)); err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vendor deleted successfully", nil)
}

// UploadVendorImage accepts a multipart "image" field
func (h *DirectoryHandler) UploadVendorImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "FILE_UPLOAD_FAILED", utils.ErrFileUploadFailed)
		return
	}
	defer src.Close()

	vendor, err := h.directoryService.UploadVendorImage(c.Request.Context(), id, &services.ImageUpload{
		Filename: file.Filename,
		Size:     file.Size,
		Reader:   src,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vendor image uploaded successfully", gin.H{"vendor": vendor})
}

// Categories

func (h *DirectoryHandler) CreateCategory(c *gin.Context) {
	var req validators.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateCreate(&req)) {
		return
	}

	category, err := h.directoryService.CreateCategory(c.Request.Context(), &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Category created successfully", gin.H{"category": category})
}

// ListCategories includes each category's vendor count
func (h *DirectoryHandler) ListCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c, "name", "name", "created_at")
	if c.Query("order") == "" {
		params.Order = "asc"
	}

	categories, total, err := h.directoryService.ListCategories(c.Request.Context(), params)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Categories retrieved successfully", gin.H{"categories": categories}, utils.CreatePaginationMeta(params, total))
}

func (h *DirectoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.directoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Category retrieved successfully", gin.H{"category": category})
}

func (h *DirectoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationFailed(c, validators.ValidateUpdate(&req)) {
		return
	}

	category, err := h.directoryService.UpdateCategory(c.Request.Context(), id, req.Updates())
	if err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Category updated successfully", gin.H{"category": category})
}

func (h *DirectoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.directoryService.DeleteCategory(c.Request.Context(), id, actor(c)); err != nil {
		utils.AppErrorResponse(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Category deleted successfully", nil)
}

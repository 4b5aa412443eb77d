package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// SettingsController handles admin profile and theme operations
type SettingsController struct {
	settingsService services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetProfile retrieves the admin profile
// @Summary Get admin profile
// @Description Retrieves the stored admin profile
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Profile not set"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/profile [get]
func (c *SettingsController) GetProfile(ctx *gin.Context) {
	profile, err := c.settingsService.GetProfile(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// UpdateProfile updates the admin profile
// @Summary Update admin profile
// @Description Overwrites the stored admin profile
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/profile [put]
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.settingsService.UpdateProfile(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// GetTheme retrieves the stored UI theme
// @Summary Get theme
// @Description Retrieves the stored UI theme, defaulting to light
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ThemeResponse} "Theme retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/theme [get]
func (c *SettingsController) GetTheme(ctx *gin.Context) {
	theme, err := c.settingsService.GetTheme(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ThemeResponse{Theme: theme},
		Timestamp: time.Now(),
	})
}

// UpdateTheme stores a new UI theme
// @Summary Update theme
// @Description Stores the UI theme, either light or dark
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateThemeRequest true "Theme value"
// @Success 200 {object} dto.APIResponse{data=dto.ThemeResponse} "Theme updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid theme value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/theme [put]
func (c *SettingsController) UpdateTheme(ctx *gin.Context) {
	var req dto.UpdateThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid theme data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.settingsService.UpdateTheme(ctx, req.Theme); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ThemeResponse{Theme: req.Theme},
		Timestamp: time.Now(),
	})
}

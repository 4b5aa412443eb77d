package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty
// @Description Creates a new faculty with the provided information
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Faculty already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetFacultyByID retrieves a faculty by ID
// @Summary Get faculty details
// @Description Retrieves detailed information about a specific faculty by its ID
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetAllFaculties retrieves all faculties
// @Summary Get all faculties
// @Description Retrieves a list of all faculties in insertion order
// @Tags faculties
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculties retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculties,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates an existing faculty
// @Summary Update a faculty
// @Description Updates an existing faculty with new information
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// DeleteFaculty deletes a faculty
// @Summary Delete a faculty
// @Description Deletes a faculty together with its departments, teachers, semesters and books
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Faculty deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.DeleteFaculty(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty deleted successfully"},
		Timestamp: time.Now(),
	})
}

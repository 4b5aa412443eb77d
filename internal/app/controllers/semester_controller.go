package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// SemesterController handles semester-related operations
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
	}
}

// CreateSemester handles semester creation
// @Summary Create a new semester
// @Description Creates a new semester under a faculty and department
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRequest true "Semester information"
// @Success 201 {object} dto.APIResponse{data=models.Semester} "Semester created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	semester, err := c.semesterService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// GetSemesterByID retrieves a semester by ID
// @Summary Get semester details
// @Description Retrieves a semester with faculty and department names resolved
// @Tags semesters
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters/{id} [get]
func (c *SemesterController) GetSemesterByID(ctx *gin.Context) {
	semester, err := c.semesterService.GetSemesterByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// GetAllSemesters retrieves semesters scoped by the optional filters
// @Summary Get all semesters
// @Description Retrieves semesters in insertion order, filtered by faculty and department when given
// @Tags semesters
// @Accept json
// @Produce json
// @Param facultyId query string false "Faculty ID filter"
// @Param departmentId query string false "Department ID filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse} "Semesters retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters [get]
func (c *SemesterController) GetAllSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.GetAllSemesters(ctx, ctx.Query("facultyId"), ctx.Query("departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semesters,
		Timestamp: time.Now(),
	})
}

// UpdateSemester updates an existing semester
// @Summary Update a semester
// @Description Updates an existing semester with new information
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID"
// @Param request body dto.UpdateSemesterRequest true "Updated semester information"
// @Success 200 {object} dto.APIResponse{data=models.Semester} "Semester updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters/{id} [put]
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	var req dto.UpdateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	semester, err := c.semesterService.UpdateSemester(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// DeleteSemester deletes a semester
// @Summary Delete a semester
// @Description Deletes a semester together with its books
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID"
// @Success 200 {object} dto.APIResponse "Semester deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters/{id} [delete]
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	if err := c.semesterService.DeleteSemester(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Semester deleted successfully"},
		Timestamp: time.Now(),
	})
}

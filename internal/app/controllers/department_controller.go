package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Description Creates a new department under a faculty
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department details
// @Description Retrieves a department with its faculty name resolved
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse} "Department retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}

// GetAllDepartments retrieves departments, optionally scoped to a faculty
// @Summary Get all departments
// @Description Retrieves departments in insertion order, filtered by faculty when facultyId is given
// @Tags departments
// @Accept json
// @Produce json
// @Param facultyId query string false "Faculty ID filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse} "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx, ctx.Query("facultyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// UpdateDepartment updates an existing department
// @Summary Update a department
// @Description Updates an existing department with new information
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Updated department information"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Description Deletes a department together with its teachers, semesters and books
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse "Department deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if err := c.departmentService.DeleteDepartment(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Department deleted successfully"},
		Timestamp: time.Now(),
	})
}

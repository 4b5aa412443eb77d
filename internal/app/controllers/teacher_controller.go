package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher under a department
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Description Retrieves a teacher with department and faculty names resolved
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacherByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetAllTeachers retrieves teachers, optionally scoped to a department
// @Summary Get all teachers
// @Description Retrieves teachers in insertion order, filtered by department when departmentId is given
// @Tags teachers
// @Accept json
// @Produce json
// @Param departmentId query string false "Department ID filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherResponse} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx, ctx.Query("departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Updates an existing teacher with new information
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Updated teacher information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes a teacher; no other records depend on teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse "Teacher deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	if err := c.teacherService.DeleteTeacher(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Teacher deleted successfully"},
		Timestamp: time.Now(),
	})
}

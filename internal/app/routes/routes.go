package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/controllers"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/middleware"
	"github.com/nasibcs/uniadmin/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	teacherController *controllers.TeacherController,
	semesterController *controllers.SemesterController,
	bookController *controllers.BookController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
	}

	semesters := v1.Group("/semesters")
	{
		semesters.GET("", semesterController.GetAllSemesters)
		semesters.GET("/:id", semesterController.GetSemesterByID)
	}

	books := v1.Group("/books")
	{
		books.GET("", bookController.GetAllBooks)
		books.GET("/:id", bookController.GetBookByID)
	}

	v1.GET("/dashboard/summary", dashboardController.GetSummary)
	v1.GET("/settings/theme", settingsController.GetTheme)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		facultiesProtected := authenticated.Group("/faculties")
		{
			facultiesProtected.POST("", facultyController.CreateFaculty)
			facultiesProtected.PUT("/:id", facultyController.UpdateFaculty)
			facultiesProtected.DELETE("/:id", facultyController.DeleteFaculty)
		}

		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.POST("", departmentController.CreateDepartment)
			departmentsProtected.PUT("/:id", departmentController.UpdateDepartment)
			departmentsProtected.DELETE("/:id", departmentController.DeleteDepartment)
		}

		teachersProtected := authenticated.Group("/teachers")
		{
			teachersProtected.POST("", teacherController.CreateTeacher)
			teachersProtected.PUT("/:id", teacherController.UpdateTeacher)
			teachersProtected.DELETE("/:id", teacherController.DeleteTeacher)
		}

		semestersProtected := authenticated.Group("/semesters")
		{
			semestersProtected.POST("", semesterController.CreateSemester)
			semestersProtected.PUT("/:id", semesterController.UpdateSemester)
			semestersProtected.DELETE("/:id", semesterController.DeleteSemester)
		}

		booksProtected := authenticated.Group("/books")
		{
			booksProtected.POST("", bookController.CreateBook)
			booksProtected.PUT("/:id", bookController.UpdateBook)
			booksProtected.DELETE("/:id", bookController.DeleteBook)
		}

		settingsProtected := authenticated.Group("/settings")
		{
			settingsProtected.GET("/profile", settingsController.GetProfile)
			settingsProtected.PUT("/profile", settingsController.UpdateProfile)
			settingsProtected.PUT("/theme", settingsController.UpdateTheme)
		}
	}

	// Change notification stream (public, read-only)
	router.GET("/ws", wsHandler.HandleConnection)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// BookController handles book-related operations
type BookController struct {
	bookService services.BookService
}

// NewBookController creates a new BookController
func NewBookController(bookService services.BookService) *BookController {
	return &BookController{
		bookService: bookService,
	}
}

// CreateBook handles book creation
// @Summary Create a new book
// @Description Creates a new book, optionally linked to a faculty, department and semester
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookRequest true "Book information"
// @Success 201 {object} dto.APIResponse{data=models.Book} "Book created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books [post]
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	book, err := c.bookService.CreateBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      book,
		Timestamp: time.Now(),
	})
}

// GetBookByID retrieves a book by ID
// @Summary Get book details
// @Description Retrieves a book with its parent names resolved
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse} "Book retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{id} [get]
func (c *BookController) GetBookByID(ctx *gin.Context) {
	book, err := c.bookService.GetBookByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      book,
		Timestamp: time.Now(),
	})
}

// GetAllBooks retrieves books scoped by the optional filters
// @Summary Get all books
// @Description Retrieves books in insertion order, filtered by faculty, department and semester when given
// @Tags books
// @Accept json
// @Produce json
// @Param facultyId query string false "Faculty ID filter"
// @Param departmentId query string false "Department ID filter"
// @Param semesterId query string false "Semester ID filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.BookResponse} "Books retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books [get]
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.bookService.GetAllBooks(ctx, ctx.Query("facultyId"), ctx.Query("departmentId"), ctx.Query("semesterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      books,
		Timestamp: time.Now(),
	})
}

// UpdateBook updates an existing book
// @Summary Update a book
// @Description Updates an existing book with new information
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body dto.UpdateBookRequest true "Updated book information"
// @Success 200 {object} dto.APIResponse{data=models.Book} "Book updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{id} [put]
func (c *BookController) UpdateBook(ctx *gin.Context) {
	var req dto.UpdateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	book, err := c.bookService.UpdateBook(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      book,
		Timestamp: time.Now(),
	})
}

// DeleteBook deletes a book
// @Summary Delete a book
// @Description Deletes a book; no other records depend on books
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 200 {object} dto.APIResponse "Book deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books/{id} [delete]
func (c *BookController) DeleteBook(ctx *gin.Context) {
	if err := c.bookService.DeleteBook(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Book deleted successfully"},
		Timestamp: time.Now(),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/internal/domains/book/service"
	"bookshelf-api/internal/shared/middleware"
	"bookshelf-api/internal/shared/response"
	"bookshelf-api/pkg/logger"
)

// Handler serves the book endpoints. Identity is resolved by the auth
// middleware; every owner-scoped handler re-checks it before touching
// the store.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// ListAll - GET /
// Deliberately unauthenticated: the whole catalog is public.
func (h *Handler) ListAll(c *gin.Context) {
	books, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("list all books failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListMine - GET /bookstore/user
func (h *Handler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	books, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("list own books failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Create - POST /book
func (h *Handler) Create(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request data")
		return
	}

	book, err := h.service.Create(c.Request.Context(), ownerID, req)
	if h.handleError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// GetByID - GET /book/:book_id
// The lookup is scoped by id+owner, so a foreign book and a missing
// book are the same 404.
func (h *Handler) GetByID(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id, ownerID)
	if h.handleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Update - PUT /book/:book_id
// Partial update: present fields overwrite, absent fields stay.
// Returns the generic success envelope, not the record.
func (h *Handler) Update(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request data")
		return
	}

	err := h.service.Update(c.Request.Context(), id, ownerID, req)
	if h.handleError(c, err) {
		return
	}

	response.Transaction(c)
}

// Search - GET /books?limit&author&title
// Second public surface: matches regardless of owner.
func (h *Handler) Search(c *gin.Context) {
	var req model.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid search parameters")
		return
	}

	books, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		logger.Error("search books failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Delete - DELETE /:book_id
func (h *Handler) Delete(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id, ok := parseBookID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id, ownerID)
	if h.handleError(c, err) {
		return
	}

	response.Transaction(c)
}

// handleError maps service errors onto the response taxonomy.
// Returns true when a response has been written.
func (h *Handler) handleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, model.ErrBookNotFound) {
		response.NotFound(c, "Book not found")
		return true
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
		return true
	}

	logger.Error("book operation failed", err)
	response.InternalServerError(c, "Internal server error")
	return true
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

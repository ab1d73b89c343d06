package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/server/http/dto"
)

// CatalogHandler manages public browsing and admin catalog endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/books.
func (h *CatalogHandler) List(c *gin.Context) {
	books, err := h.facade.ListBooks(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		response = append(response, dto.NewBookResponse(&books[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/books/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(book))
}

// Create handles POST /api/books.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.CreateBook(c.Request.Context(), req.Model(uuid.Nil))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidBook):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewBookResponse(book))
}

// Update handles PUT /api/books/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.UpdateBook(c.Request.Context(), req.Model(id))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidBook):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(book))
}

// Delete handles DELETE /api/books/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

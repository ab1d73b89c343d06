package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/server/http/dto"
)

// AccessHandler answers whether the current user may read a book.
type AccessHandler struct {
	facade AccessFacade
}

// NewAccessHandler constructs AccessHandler.
func NewAccessHandler(facade AccessFacade) *AccessHandler {
	return &AccessHandler{facade: facade}
}

// Check handles GET /api/books/:id/access.
func (h *AccessHandler) Check(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	decision, err := h.facade.CheckAccess(c.Request.Context(), CurrentUserID(c), bookID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	if !decision.HasAccess {
		c.JSON(http.StatusForbidden, dto.AccessResponse{
			HasAccess: false,
			Message:   "Purchase required to access this book",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AccessResponse{HasAccess: true, Book: decision.Book})
}

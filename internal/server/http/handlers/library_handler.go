package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookery/bookery/internal/domain/model"
)

// LibraryHandler serves the user's purchased books.
type LibraryHandler struct {
	facade LibraryFacade
}

// NewLibraryHandler constructs LibraryHandler.
func NewLibraryHandler(facade LibraryFacade) *LibraryHandler {
	return &LibraryHandler{facade: facade}
}

// List handles GET /api/user/library. An empty library is a valid
// answer and still returns 200 with an empty array.
func (h *LibraryHandler) List(c *gin.Context) {
	views, err := h.facade.Library(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if views == nil {
		views = []model.BookView{}
	}
	c.JSON(http.StatusOK, views)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/service"
)

// ViewHandler serves websites to anonymous viewers.
type ViewHandler struct {
	websiteService service.WebsiteServiceInterface
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(websiteService service.WebsiteServiceInterface) *ViewHandler {
	return &ViewHandler{websiteService: websiteService}
}

// ViewWebsite handles GET /view/:websiteId
func (h *ViewHandler) ViewWebsite(c *gin.Context) {
	view, err := h.websiteService.ViewWebsite(c.Request.Context(), c.Param("websiteId"))
	if err != nil {
		respondError(c, err, "load website")
		return
	}

	status := http.StatusOK
	if view.Status == domain.ViewStatusNotFound {
		status = http.StatusNotFound
	}

	c.JSON(status, view)
}

package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagesift/pagesift"
)

// Handler handles HTTP requests for the scrape API.
type Handler struct {
	service pagesift.Service
}

// NewHandler creates a Handler over the given service.
func NewHandler(service pagesift.Service) *Handler {
	return &Handler{service: service}
}

// Health reports that the server is running.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

// Scrape handles GET /scrape?url=. The service never fails past input
// validation, so the only client-visible errors are a missing or
// unparseable url parameter.
func (h *Handler) Scrape(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}

	result, err := h.service.Scrape(c.Request.Context(), url)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderResult(result))
}

// Search handles GET /search?q=.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderResult(result))
}

// renderResult flattens a Result into the documented JSON shape: the
// summary under website_summary, then one key per non-empty category.
func renderResult(result *pagesift.Result) gin.H {
	resp := gin.H{}
	if result.Summary != nil {
		resp["website_summary"] = result.Summary
	}
	for category, items := range result.Items {
		resp[string(category)] = items
	}
	return resp
}

// renderError maps application error codes onto HTTP statuses.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if pagesift.ErrorCode(err) == pagesift.EINVALID {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": pagesift.ErrorMessage(err)})
}

package dnahandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loorthu/vexa/internal/domain/dna"
)

// DNAHandler exposes the DNA backend integration over HTTP. Every response
// is 200 with the facade's result; availability and per-call failures are
// encoded in the body, never in the status code, so downstream callers
// need no branching.
type DNAHandler struct {
	integration *dna.Integration
}

func NewDNAHandler(integration *dna.Integration) *DNAHandler {
	return &DNAHandler{integration: integration}
}

// GetModels
// @Summary List available LLM models
// @Description Returns the models the DNA backend can serve, or the fallback shape when the backend is unavailable.
// @Tags DNA Integration
// @Produce json
// @Success 200 {object} map[string]any
// @Router /v1/dna/models [get]
func (h *DNAHandler) GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.integration.AvailableModels(c.Request.Context()))
}

// Summarize
// @Summary Generate a summary
// @Description Forwards the request payload to the DNA backend summary capability.
// @Tags DNA Integration
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /v1/dna/summary [post]
func (h *DNAHandler) Summarize(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.integration.Summarize(c.Request.Context(), payload))
}

// GetConfig
// @Summary Get DNA backend configuration
// @Tags DNA Integration
// @Produce json
// @Success 200 {object} map[string]any
// @Router /v1/dna/config [get]
func (h *DNAHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.integration.Config())
}

package api

import (
	"net/http"

	resdto "autopneu-api/internal/handler/dto/response"
	"autopneu-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteUseCase usecase.SiteUseCase
}

func NewSiteHandler(siteUseCase usecase.SiteUseCase) *SiteHandler {
	return &SiteHandler{
		siteUseCase: siteUseCase,
	}
}

// @Summary Get site content
// @Description Public site document: content fields, availability rules and published articles. Secrets are stripped.
// @Tags site
// @Produce json
// @Success 200 {object} resdto.PublicConfigResponse
// @Router /site [get]
func (h *SiteHandler) GetSite(c *gin.Context) {
	cfg, err := h.siteUseCase.GetConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromConfigPublic(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List services
// @Description Public service catalog
// @Tags site
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *SiteHandler) ListServices(c *gin.Context) {
	services, err := h.siteUseCase.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromServices(services)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

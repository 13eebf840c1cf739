package api

import (
	"errors"
	"net/http"

	"autopneu-api/internal/domain/booking"
	reqdto "autopneu-api/internal/handler/dto/request"
	resdto "autopneu-api/internal/handler/dto/response"
	"autopneu-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase   usecase.AdminUseCase
	bookingUseCase usecase.BookingUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, bookingUseCase usecase.BookingUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Admin login
// @Description Verify the admin password for the hidden admin gate
// @Tags admin
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.VerifyPassword(c.Request.Context(), req.Password); err != nil {
		if errors.Is(err, usecase.ErrAuthMismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Chybné heslo!",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// No session is issued on purpose; every admin request re-sends the
	// password header.
	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description Full booking list (newest-first) with pending count
// @Tags admin
// @Produce json
// @Security AdminPassword
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, pending, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(bookings, pending))
}

// @Summary Set booking status
// @Description Replace a booking's status; any-to-any transitions are allowed. Unknown IDs are a no-op.
// @Tags admin
// @Accept json
// @Security AdminPassword
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.bookingUseCase.SetStatus(c.Request.Context(), c.Param("id"), booking.Status(req.Status))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking fields
// @Description Merge a partial edit into a booking. Unknown IDs are a no-op.
// @Tags admin
// @Accept json
// @Security AdminPassword
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Partial fields"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings/{id} [patch]
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingUseCase.UpdateFields(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get site config
// @Description Full site document for the admin working copy
// @Tags admin
// @Produce json
// @Security AdminPassword
// @Success 200 {object} resdto.AdminConfigResponse
// @Failure 401 {object} map[string]string
// @Router /admin/config [get]
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.adminUseCase.GetConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromConfigAdmin(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update site config
// @Description Commit the admin working copy of the site document
// @Tags admin
// @Accept json
// @Security AdminPassword
// @Param request body reqdto.UpdateConfigRequest true "Site document"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/config [put]
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req reqdto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cfg, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	if err := h.adminUseCase.UpdateConfig(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Replace service catalog
// @Description Commit the admin working copy of the service catalog; empty IDs are assigned
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminPassword
// @Param request body reqdto.ReplaceServicesRequest true "Service catalog"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/services [put]
func (h *AdminHandler) ReplaceServices(c *gin.Context) {
	var req reqdto.ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	services, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	saved, err := h.adminUseCase.ReplaceServices(c.Request.Context(), services)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCatalog) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service category",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromServices(saved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Factory reset
// @Description Wipe all persisted documents and fall back to factory defaults. Irreversible; requires confirm=true.
// @Tags admin
// @Accept json
// @Security AdminPassword
// @Param request body reqdto.FactoryResetRequest true "Confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/reset [post]
func (h *AdminHandler) FactoryReset(c *gin.Context) {
	var req reqdto.FactoryResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.FactoryReset(c.Request.Context(), req.Confirm); err != nil {
		if errors.Is(err, usecase.ErrResetNotConfirmed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Factory reset requires explicit confirmation",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Generate service description
// @Description AI helper for catalog copy
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminPassword
// @Param request body reqdto.GenerateDescriptionRequest true "Service name"
// @Success 200 {object} resdto.GeneratedTextResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/generate/description [post]
func (h *AdminHandler) GenerateDescription(c *gin.Context) {
	var req reqdto.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	text, err := h.adminUseCase.GenerateServiceDescription(c.Request.Context(), req.ServiceName)
	if err != nil {
		h.respondGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.GeneratedTextResponse{Text: text})
}

// @Summary Generate SEO text
// @Description AI helper for site copy
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminPassword
// @Param request body reqdto.GenerateSeoRequest true "Topic"
// @Success 200 {object} resdto.GeneratedTextResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/generate/seo [post]
func (h *AdminHandler) GenerateSeo(c *gin.Context) {
	var req reqdto.GenerateSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	text, err := h.adminUseCase.GenerateSeoText(c.Request.Context(), req.Topic)
	if err != nil {
		h.respondGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.GeneratedTextResponse{Text: text})
}

func (h *AdminHandler) respondGenerateError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrGeneratorDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Text generator is not configured",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/handler/api"
	reqdto "autopneu-api/internal/handler/dto/request"
	resdto "autopneu-api/internal/handler/dto/response"
	"autopneu-api/internal/handler/middleware"
	"autopneu-api/internal/usecase"
	"autopneu-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testAdminPassword = "s3cret"

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAdmin   *MockAdminUseCase
	mockBooking *MockBookingUseCase
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockAdmin = new(MockAdminUseCase)
	s.mockBooking = new(MockBookingUseCase)
	s.handler = api.NewAdminHandler(s.mockAdmin, s.mockBooking)

	adminAuth := middleware.NewAdminAuthMiddleware(s.mockAdmin)

	s.router.POST("/api/admin/login", s.handler.Login)

	authed := s.router.Group("/api/admin", adminAuth.RequireAdmin())
	authed.GET("/bookings", s.handler.ListBookings)
	authed.PATCH("/bookings/:id", s.handler.UpdateBooking)
	authed.PATCH("/bookings/:id/status", s.handler.SetBookingStatus)
	authed.GET("/config", s.handler.GetConfig)
	authed.PUT("/config", s.handler.UpdateConfig)
	authed.PUT("/services", s.handler.ReplaceServices)
	authed.POST("/reset", s.handler.FactoryReset)
	authed.POST("/generate/description", s.handler.GenerateDescription)
	authed.POST("/generate/seo", s.handler.GenerateSeo)
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// expectAuth arms the password check the RequireAdmin middleware performs.
func (s *AdminHandlerTestSuite) expectAuth() {
	s.mockAdmin.On("VerifyPassword", mock.Anything, testAdminPassword).Return(nil).Once()
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"

	s.Run("success: 204 and no session", func() {
		s.mockAdmin.On("VerifyPassword", mock.Anything, testAdminPassword).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{Password: testAdminPassword}, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Result().Cookies())
	})

	s.Run("error: 401 with Czech message on wrong password", func() {
		s.mockAdmin.On("VerifyPassword", mock.Anything, "wrong").Return(usecase.ErrAuthMismatch).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{Password: "wrong"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Chybné heslo!")
	})

	s.Run("error: 400 on missing password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestAdminGate() {
	s.Run("error: 401 without password header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin password required")
	})

	s.Run("error: 401 with wrong password header", func() {
		s.mockAdmin.On("VerifyPassword", mock.Anything, "wrong").Return(usecase.ErrAuthMismatch).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "wrong")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid admin password")
		s.mockBooking.AssertNotCalled(s.T(), "ListBookings", mock.Anything)
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	url := "/api/admin/bookings"

	s.Run("success: list with pending count", func() {
		s.expectAuth()
		list := []*booking.Booking{
			booking.ReconstructBooking("2", "Petr", "", "+420 2", "1", "2024-06-11", "09:00", booking.StatusPending, ""),
			booking.ReconstructBooking("1", "Jan", "", "+420 1", "1", "2024-06-10", "08:00", booking.StatusConfirmed, ""),
		}
		s.mockBooking.On("ListBookings", mock.Anything).Return(list, 1, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminPassword)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Bookings, 2)
		s.Equal("2", response.Bookings[0].ID)
		s.Equal(1, response.PendingCount)
	})

	s.Run("error: 500 on load failure", func() {
		s.expectAuth()
		s.mockBooking.On("ListBookings", mock.Anything).Return(nil, 0, assert.AnError).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminPassword)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestSetBookingStatus() {
	url := "/api/admin/bookings/42/status"

	s.Run("success: 204", func() {
		s.expectAuth()
		s.mockBooking.On("SetStatus", mock.Anything, "42", booking.StatusConfirmed).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.SetStatusRequest{Status: "confirmed"}, testAdminPassword)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: unknown id still 204", func() {
		s.expectAuth()
		s.mockBooking.On("SetStatus", mock.Anything, "42", booking.StatusCancelled).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.SetStatusRequest{Status: "cancelled"}, testAdminPassword)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on invalid status", func() {
		s.expectAuth()
		s.mockBooking.On("SetStatus", mock.Anything, "42", booking.Status("done")).Return(usecase.ErrInvalidStatus).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.SetStatusRequest{Status: "done"}, testAdminPassword)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking status")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateBooking() {
	url := "/api/admin/bookings/42"
	customerName := "Petr Svoboda"

	s.Run("success: 204 with partial fields", func() {
		s.expectAuth()
		s.mockBooking.On("UpdateFields", mock.Anything, "42", mock.MatchedBy(func(p booking.Patch) bool {
			return p.CustomerName != nil && *p.CustomerName == customerName && p.Phone == nil
		})).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateBookingRequest{CustomerName: &customerName}, testAdminPassword)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestGetConfig() {
	url := "/api/admin/config"

	s.Run("success: working copy includes secrets", func() {
		s.expectAuth()
		cfg := site.DefaultConfig()
		cfg.AdminPassword = testAdminPassword
		cfg.EmailJSPublicKey = "public_z3"
		cfg.Articles = []site.Article{
			{ID: "a1", Published: true},
			{ID: "a2", Published: false},
		}
		s.mockAdmin.On("GetConfig", mock.Anything).Return(cfg, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminPassword)

		var response resdto.AdminConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(testAdminPassword, response.AdminPassword)
		s.Equal("public_z3", response.EmailJSPublicKey)

		// Drafts stay visible in the working copy
		s.Len(response.Articles, 2)
	})
}

func (s *AdminHandlerTestSuite) TestUpdateConfig() {
	url := "/api/admin/config"

	s.Run("success: 204 on commit", func() {
		s.expectAuth()
		s.mockAdmin.On("UpdateConfig", mock.Anything, mock.MatchedBy(func(cfg site.Config) bool {
			return cfg.SiteName == "Pneu Dvořák" && cfg.AdminPassword == "nove-heslo"
		})).Return(nil).Once()

		body := reqdto.UpdateConfigRequest{
			SiteName:        "Pneu Dvořák",
			AdminPassword:   "nove-heslo",
			AvailableDays:   []int{1, 2, 3},
			CustomTimeSlots: []string{"08:00"},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, testAdminPassword)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestReplaceServices() {
	url := "/api/admin/services"

	s.Run("success: returns the saved catalog with assigned ids", func() {
		s.expectAuth()
		saved := []catalog.Service{
			{ID: "1", Name: "Přezutí", Category: catalog.CategoryTire},
			{ID: "3f1f8d0a-0000-0000-0000-000000000001", Name: "Výměna oleje", Category: catalog.CategoryService},
		}
		s.mockAdmin.On("ReplaceServices", mock.Anything, mock.Anything).Return(saved, nil).Once()

		body := reqdto.ReplaceServicesRequest{
			Services: []reqdto.ServiceRequest{
				{ID: "1", Name: "Přezutí", Category: "pneu"},
				{Name: "Výměna oleje", Category: "servis"},
			},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, testAdminPassword)

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.NotEmpty(response[1].ID)
	})

	s.Run("error: 400 on invalid category", func() {
		s.expectAuth()
		s.mockAdmin.On("ReplaceServices", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrInvalidCatalog).Once()

		body := reqdto.ReplaceServicesRequest{
			Services: []reqdto.ServiceRequest{{Name: "Tuning", Category: "tuning"}},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, testAdminPassword)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service category")
	})
}

func (s *AdminHandlerTestSuite) TestFactoryReset() {
	url := "/api/admin/reset"

	s.Run("success: 204 when confirmed", func() {
		s.expectAuth()
		s.mockAdmin.On("FactoryReset", mock.Anything, true).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.FactoryResetRequest{Confirm: true}, testAdminPassword)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 without confirmation", func() {
		s.expectAuth()
		s.mockAdmin.On("FactoryReset", mock.Anything, false).Return(usecase.ErrResetNotConfirmed).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.FactoryResetRequest{Confirm: false}, testAdminPassword)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Factory reset requires explicit confirmation")
	})
}

func (s *AdminHandlerTestSuite) TestGenerate() {
	s.Run("success: description", func() {
		s.expectAuth()
		s.mockAdmin.On("GenerateServiceDescription", mock.Anything, "Přezutí kol").
			Return("Profesionální přezutí.", nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/generate/description",
			reqdto.GenerateDescriptionRequest{ServiceName: "Přezutí kol"}, testAdminPassword)

		var response resdto.GeneratedTextResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Profesionální přezutí.", response.Text)
	})

	s.Run("success: seo text", func() {
		s.expectAuth()
		s.mockAdmin.On("GenerateSeoText", mock.Anything, "pneuservis Praha").
			Return("Váš pneuservis v Praze.", nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/generate/seo",
			reqdto.GenerateSeoRequest{Topic: "pneuservis Praha"}, testAdminPassword)

		var response resdto.GeneratedTextResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Váš pneuservis v Praze.", response.Text)
	})

	s.Run("error: 503 when generator disabled", func() {
		s.expectAuth()
		s.mockAdmin.On("GenerateServiceDescription", mock.Anything, "Přezutí kol").
			Return("", usecase.ErrGeneratorDisabled).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/generate/description",
			reqdto.GenerateDescriptionRequest{ServiceName: "Přezutí kol"}, testAdminPassword)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Text generator is not configured")
	})
}

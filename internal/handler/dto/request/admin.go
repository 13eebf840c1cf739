package request

import (
	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"

	"github.com/jinzhu/copier"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingRequest is a partial edit; absent fields stay untouched.
type UpdateBookingRequest struct {
	CustomerName *string `json:"customerName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	ServiceID    *string `json:"serviceId"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Note         *string `json:"note"`
}

func (r UpdateBookingRequest) ToPatch() booking.Patch {
	return booking.Patch{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
		Note:         r.Note,
	}
}

type FactoryResetRequest struct {
	Confirm bool `json:"confirm"`
}

type GenerateDescriptionRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
}

type GenerateSeoRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type ServiceRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type ReplaceServicesRequest struct {
	Services []ServiceRequest `json:"services"`
}

func (r ReplaceServicesRequest) ToDomain() ([]catalog.Service, error) {
	services := make([]catalog.Service, 0, len(r.Services))
	if err := copier.Copy(&services, r.Services); err != nil {
		return nil, err
	}
	return services, nil
}

// UpdateConfigRequest mirrors the whole site document; the admin panel
// commits its working copy in one piece.
type UpdateConfigRequest struct {
	SiteName         string `json:"siteName"`
	SiteTagline      string `json:"siteTagline"`
	HeroTitle        string `json:"heroTitle"`
	HeroSubtitle     string `json:"heroSubtitle"`
	HeroImageURL     string `json:"heroImageUrl"`
	ServicesTitle    string `json:"servicesTitle"`
	ServicesSubtitle string `json:"servicesSubtitle"`
	AboutTitle       string `json:"aboutTitle"`
	AboutText        string `json:"aboutText"`
	AboutImageURL1   string `json:"aboutImageUrl1"`
	AboutImageURL2   string `json:"aboutImageUrl2"`
	BookingTitle     string `json:"bookingTitle"`
	BookingSubtitle  string `json:"bookingSubtitle"`
	ArticlesTitle    string `json:"articlesTitle"`
	ArticlesSubtitle string `json:"articlesSubtitle"`
	FooterAboutText  string `json:"footerAboutText"`
	FooterBottomText string `json:"footerBottomText"`
	FacebookURL      string `json:"facebookUrl"`
	InstagramURL     string `json:"instagramUrl"`
	ContactEmail     string `json:"contactEmail"`
	ContactPhone     string `json:"contactPhone"`
	ContactAddress   string `json:"contactAddress"`
	OpeningHoursWeek string `json:"openingHoursWeek"`
	OpeningHoursSat  string `json:"openingHoursSat"`
	LogoURL          string `json:"logoUrl"`
	PrimaryColor     string `json:"primaryColor"`
	AccentColor      string `json:"accentColor"`

	AdminPassword   string           `json:"adminPassword"`
	AvailableDays   []int            `json:"availableDays"`
	CustomTimeSlots []string         `json:"customTimeSlots"`
	Articles        []ArticleRequest `json:"articles"`

	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	EmailJSServiceID          string `json:"emailjsServiceId"`
	EmailJSTemplateID         string `json:"emailjsTemplateId"`
	EmailJSPublicKey          string `json:"emailjsPublicKey"`
	RecipientEmail            string `json:"recipientEmail"`
}

type ArticleRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}

func (r UpdateConfigRequest) ToDomain() (site.Config, error) {
	var cfg site.Config
	if err := copier.Copy(&cfg, r); err != nil {
		return site.Config{}, err
	}
	return cfg, nil
}

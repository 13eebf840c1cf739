package response

import (
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"

	"github.com/jinzhu/copier"
)

// PublicConfigResponse is the site document as the public client sees it:
// no admin password, no relay credentials, published articles only. The
// field set is the strip list; copier only fills what is declared here.
type PublicConfigResponse struct {
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

	AvailableDays   []int             `json:"availableDays"`
	CustomTimeSlots []string          `json:"customTimeSlots"`
	Articles        []ArticleResponse `json:"articles"`
}

type ArticleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}

func FromConfigPublic(cfg site.Config) (*PublicConfigResponse, error) {
	var resp PublicConfigResponse
	if err := copier.Copy(&resp, cfg); err != nil {
		return nil, err
	}

	published := cfg.PublishedArticles()
	resp.Articles = make([]ArticleResponse, 0, len(published))
	if err := copier.Copy(&resp.Articles, published); err != nil {
		return nil, err
	}
	return &resp, nil
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

func FromServices(services []catalog.Service) ([]ServiceResponse, error) {
	out := make([]ServiceResponse, 0, len(services))
	if err := copier.Copy(&out, services); err != nil {
		return nil, err
	}
	return out, nil
}

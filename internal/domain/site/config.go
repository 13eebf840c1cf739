package site

// DefaultAdminPassword is used when the stored config has no password set.
// This comparison is not a security control: anyone with access to the
// document store can read or change it. It only gates the admin UI.
const DefaultAdminPassword = "admin"

type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}

// Config is the single site-wide document: display content, the booking
// availability rules and the email-relay settings. It is operator-edited as
// a whole (working copy committed back, no field-level merge).
//
// AvailableDays and CustomTimeSlots must never be empty in a healthy
// deployment: empty slots make the time field unselectable and empty days
// reject every date.
type Config struct {
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

	AdminPassword   string    `json:"adminPassword,omitempty"`
	AvailableDays   []int     `json:"availableDays"`
	CustomTimeSlots []string  `json:"customTimeSlots"`
	Articles        []Article `json:"articles"`

	// Email-relay (EmailJS) settings
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	EmailJSServiceID          string `json:"emailjsServiceId"`
	EmailJSTemplateID         string `json:"emailjsTemplateId"`
	EmailJSPublicKey          string `json:"emailjsPublicKey"`
	RecipientEmail            string `json:"recipientEmail"`
}

// EffectiveAdminPassword falls back to the well-known default when the
// stored config carries no password.
func (c Config) EffectiveAdminPassword() string {
	if c.AdminPassword == "" {
		return DefaultAdminPassword
	}
	return c.AdminPassword
}

// NotificationRecipient is the configured recipient, else the shop's public
// contact address.
func (c Config) NotificationRecipient() string {
	if c.RecipientEmail == "" {
		return c.ContactEmail
	}
	return c.RecipientEmail
}

// PublishedArticles filters the article list down to what the public site
// shows.
func (c Config) PublishedArticles() []Article {
	out := make([]Article, 0, len(c.Articles))
	for _, a := range c.Articles {
		if a.Published {
			out = append(out, a)
		}
	}
	return out
}

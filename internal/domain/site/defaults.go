package site

import "autopneu-api/internal/domain/catalog"

// DefaultConfig is the factory-state site document, used whenever the stored
// one is absent or unreadable.
func DefaultConfig() Config {
	return Config{
		SiteName:         "AutoPneu Pro",
		SiteTagline:      "Pneuservis & Autoservis",
		HeroTitle:        "Profesionální péče o váš vůz",
		HeroSubtitle:     "Rychlý pneuservis a spolehlivý autoservis s tradicí. Rezervujte si svůj termín online během pár vteřin.",
		HeroImageURL:     "https://images.unsplash.com/photo-1621905252507-b354bcadcabc?auto=format&fit=crop&q=80&w=800",
		ServicesTitle:    "Kvalitní péče o váš vůz",
		ServicesSubtitle: "Nabízíme kompletní portfolio služeb pro osobní i užitkové vozy.",
		AboutTitle:       "O našem servisu",
		AboutText:        "Jsme tým nadšenců do aut, kteří věří, že kvalita a osobní přístup jsou základem spokojenosti. Od přezouvání pneumatik až po složité motorové opravy - váš vůz je u nás v nejlepších rukou.",
		AboutImageURL1:   "https://images.unsplash.com/photo-1503376780353-7e6692767b70?auto=format&fit=crop&q=80&w=400",
		AboutImageURL2:   "https://images.unsplash.com/photo-1487754180451-c456f719c141?auto=format&fit=crop&q=80&w=400",
		BookingTitle:     "Rezervace termínu",
		BookingSubtitle:  "Vyberte si službu a čas, který vám vyhovuje. My se o zbytek postaráme.",
		ArticlesTitle:    "Aktuality z našeho servisu",
		ArticlesSubtitle: "Sledujte novinky, tipy pro údržbu a speciální akce, které pro vás připravujeme.",
		FooterAboutText:  "Jsme moderní servis, který si zakládá na férovosti, profesionalitě a rychlosti. Vaše auto je naše starost.",
		FooterBottomText: "Vytvořeno pro váš bezpečný dojezd",
		FacebookURL:      "https://facebook.com",
		InstagramURL:     "https://instagram.com",
		ContactEmail:     "info@autopneu-pro.cz",
		ContactPhone:     "+420 777 888 999",
		ContactAddress:   "Autoopravářská 123, 150 00 Praha 5",
		OpeningHoursWeek: "8:00 - 18:00",
		OpeningHoursSat:  "9:00 - 13:00",
		LogoURL:          "https://picsum.photos/id/1072/200/200",
		PrimaryColor:     "#2563eb",
		AccentColor:      "#4f46e5",

		AdminPassword:   DefaultAdminPassword,
		AvailableDays:   []int{1, 2, 3, 4, 5, 6},
		CustomTimeSlots: []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		Articles: []Article{
			{
				ID:        "a1",
				Title:     "Příprava na zimní sezónu",
				Content:   "Nezapomeňte na včasné přezutí. Doporučujeme kontrolu dezénu a stavu akumulátoru před prvními mrazy.",
				Date:      "2024-10-15",
				ImageURL:  "https://images.unsplash.com/photo-1578844541663-47139a331df5?auto=format&fit=crop&q=80&w=600",
				Published: true,
			},
		},

		EmailNotificationsEnabled: false,
		EmailJSServiceID:          "",
		EmailJSTemplateID:         "",
		EmailJSPublicKey:          "",
		RecipientEmail:            "",
	}
}

// DefaultServices seeds the catalog on first start.
func DefaultServices() []catalog.Service {
	return []catalog.Service{
		{
			ID:          "1",
			Name:        "Kompletní přezutí kol",
			Description: "Demontáž, montáž a vyvážení kol včetně kontroly stavu pneumatik.",
			Price:       "od 1 200 Kč",
			Category:    catalog.CategoryTire,
			ImageURL:    "https://images.unsplash.com/photo-1545094348-735990267c7e?auto=format&fit=crop&q=80&w=600",
		},
	}
}

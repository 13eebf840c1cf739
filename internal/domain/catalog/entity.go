package catalog

// Category splits the catalog between tire work and general service.
type Category string

const (
	CategoryTire    Category = "pneu"
	CategoryService Category = "servis"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryTire, CategoryService:
		return true
	default:
		return false
	}
}

// Service is an operator-maintained catalog entry. Price is a display string
// ("od 1 200 Kč"), not an amount. Bookings reference services by ID with no
// cascading-delete protection; a deleted service leaves a dangling reference
// that readers resolve to a "not found" label.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
}

// FindByID resolves a booking's service reference; ok is false when the
// reference is dangling.
func FindByID(services []Service, id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

package models

// Browser storage keys used by the static pages.
const (
	StorageKeyCart      = "cart"
	StorageKeyTheme     = "theme"
	StorageKeyLoyalUser = "loyalUser"
)

// --- COUNTRIES ---

// Country is one record of the REST Countries "all" endpoint, limited to the
// fields the lookup page requests.
type Country struct {
	Name       CountryName         `json:"name"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Flags      Flags               `json:"flags"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// CountryCard is the display projection of a Country.
// Absent values are rendered as "N/A".
type CountryCard struct {
	Name       string `json:"name"`
	Flag       string `json:"flag"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	Currencies string `json:"currencies"`
	Languages  string `json:"languages"`
}

// CountryGroup is one bucket of the grouped view. Flat groupings fill
// Countries; the region/subregion view fills Groups instead.
type CountryGroup struct {
	Key       string         `json:"key"`
	Count     int            `json:"count"`
	Countries []CountryCard  `json:"countries,omitempty"`
	Groups    []CountryGroup `json:"groups,omitempty"`
}

type CountryView struct {
	Filter     string         `json:"filter"`
	Generation uint64         `json:"generation"`
	Groups     []CountryGroup `json:"groups"`
}

// --- LANGUAGES ---

type Language struct {
	FormattedName string   `json:"formattedName"`
	ReleaseDate   string   `json:"releaseDate"`
	Paradigm      []string `json:"paradigm"`
	CommonUses    []string `json:"commonUses"`
	WikiLink      string   `json:"wikiLink"`
}

// --- STOREFRONT ---

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type LoyaltyUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Joined string `json:"joined"`
}

type Feedback struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Category struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Subcategories []string `json:"subcategories"`
}

type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// CartRef identifies a product the way the item pages address it.
type CartRef struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	ID          string `json:"id"`
}

type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

type CartQuote struct {
	Lines   []CartLine `json:"lines"`
	Missing []CartRef  `json:"missing,omitempty"`
	Total   float64    `json:"total"`
}

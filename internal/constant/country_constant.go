package constant

type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Schengen bool   `json:"is_schengen"`
}

const (
	LocaleEN = "en"
	LocaleFR = "fr"

	DefaultLocale = LocaleEN

	PreferenceCacheKeyPrefix = "am_prefs:"
)

var AfricanOrigins = []Country{
	{Code: "NG", Name: "Nigeria", Region: "Africa"},
	{Code: "GH", Name: "Ghana", Region: "Africa"},
	{Code: "KE", Name: "Kenya", Region: "Africa"},
	{Code: "ZA", Name: "South Africa", Region: "Africa"},
	{Code: "EG", Name: "Egypt", Region: "Africa"},
	{Code: "MA", Name: "Morocco", Region: "Africa"},
	{Code: "ET", Name: "Ethiopia", Region: "Africa"},
	{Code: "UG", Name: "Uganda", Region: "Africa"},
	{Code: "TZ", Name: "Tanzania", Region: "Africa"},
	{Code: "RW", Name: "Rwanda", Region: "Africa"},
	{Code: "SN", Name: "Senegal", Region: "Africa"},
	{Code: "CM", Name: "Cameroon", Region: "Africa"},
}

var Destinations = []Country{
	{Code: "UK", Name: "United Kingdom", Region: "Europe"},
	{Code: "US", Name: "United States", Region: "North America"},
	{Code: "CA", Name: "Canada", Region: "North America"},
	{Code: "AU", Name: "Australia", Region: "Oceania"},
	{Code: "NZ", Name: "New Zealand", Region: "Oceania"},
	{Code: "DE", Name: "Germany", Region: "Europe", Schengen: true},
	{Code: "FR", Name: "France", Region: "Europe", Schengen: true},
	{Code: "NL", Name: "Netherlands", Region: "Europe", Schengen: true},
	{Code: "ES", Name: "Spain", Region: "Europe", Schengen: true},
	{Code: "IT", Name: "Italy", Region: "Europe", Schengen: true},
	{Code: "IE", Name: "Ireland", Region: "Europe"},
	{Code: "SE", Name: "Sweden", Region: "Europe", Schengen: true},
	{Code: "DK", Name: "Denmark", Region: "Europe", Schengen: true},
	{Code: "FI", Name: "Finland", Region: "Europe", Schengen: true},
	{Code: "BE", Name: "Belgium", Region: "Europe", Schengen: true},
	{Code: "AT", Name: "Austria", Region: "Europe", Schengen: true},
	{Code: "PT", Name: "Portugal", Region: "Europe", Schengen: true},
	{Code: "CH", Name: "Switzerland", Region: "Europe", Schengen: true},
	{Code: "CZ", Name: "Czechia", Region: "Europe", Schengen: true},
	{Code: "PL", Name: "Poland", Region: "Europe", Schengen: true},
	{Code: "HU", Name: "Hungary", Region: "Europe", Schengen: true},
	{Code: "GR", Name: "Greece", Region: "Europe", Schengen: true},
	{Code: "MT", Name: "Malta", Region: "Europe", Schengen: true},
	{Code: "HR", Name: "Croatia", Region: "Europe", Schengen: true},
	{Code: "LU", Name: "Luxembourg", Region: "Europe", Schengen: true},
	{Code: "SI", Name: "Slovenia", Region: "Europe", Schengen: true},
	{Code: "EE", Name: "Estonia", Region: "Europe", Schengen: true},
	{Code: "LV", Name: "Latvia", Region: "Europe", Schengen: true},
	{Code: "LT", Name: "Lithuania", Region: "Europe", Schengen: true},
	{Code: "IS", Name: "Iceland", Region: "Europe", Schengen: true},
	{Code: "LI", Name: "Liechtenstein", Region: "Europe", Schengen: true},
	{Code: "NO", Name: "Norway", Region: "Europe", Schengen: true},
}

// Dictionary holds the preference labels per locale.
var Dictionary = map[string]map[string]string{
	LocaleEN: {
		"origin":      "Origin",
		"destination": "Destination",
		"language":    "Language",
	},
	LocaleFR: {
		"origin":      "Pays d'origine",
		"destination": "Destination",
		"language":    "Langue",
	},
}

func FindOrigin(code string) (Country, bool) {
	return findCountry(AfricanOrigins, code)
}

func FindDestination(code string) (Country, bool) {
	return findCountry(Destinations, code)
}

func findCountry(list []Country, code string) (Country, bool) {
	for _, c := range list {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

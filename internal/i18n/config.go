package i18n

// Locale is a supported content language code
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"
	LocaleDE Locale = "de"
	LocaleFR Locale = "fr"
	LocaleES Locale = "es"
	LocaleIT Locale = "it"
)

// DefaultLocale is the fallback when no locale can be resolved
const DefaultLocale = LocaleEN

// Country is a supported market code; "global" means no country context
type Country string

const (
	CountryGlobal Country = "global"
	CountryNL     Country = "nl"
	CountryBE     Country = "be"
	CountryDE     Country = "de"
	CountryFR     Country = "fr"
	CountryES     Country = "es"
	CountryIT     Country = "it"
	CountryUK     Country = "uk"
	CountryUS     Country = "us"
	CountryAU     Country = "au"
)

// Locales returns all supported locales in declaration order
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleNL, LocaleDE, LocaleFR, LocaleES, LocaleIT}
}

// Countries returns all supported countries in declaration order
func Countries() []Country {
	return []Country{
		CountryGlobal, CountryNL, CountryBE, CountryDE, CountryFR,
		CountryES, CountryIT, CountryUK, CountryUS, CountryAU,
	}
}

var localeNames = map[Locale]string{
	LocaleEN: "English",
	LocaleNL: "Nederlands",
	LocaleDE: "Deutsch",
	LocaleFR: "Français",
	LocaleES: "Español",
	LocaleIT: "Italiano",
}

var countryNames = map[Country]string{
	CountryGlobal: "Global",
	CountryNL:     "Netherlands",
	CountryBE:     "Belgium",
	CountryDE:     "Germany",
	CountryFR:     "France",
	CountryES:     "Spain",
	CountryIT:     "Italy",
	CountryUK:     "United Kingdom",
	CountryUS:     "United States",
	CountryAU:     "Australia",
}

// countryLocales maps each country to its primary content language.
// Belgium defaults to Dutch; French-speaking regions are served by
// the language switcher, not a separate country.
var countryLocales = map[Country]Locale{
	CountryGlobal: LocaleEN,
	CountryNL:     LocaleNL,
	CountryBE:     LocaleNL,
	CountryDE:     LocaleDE,
	CountryFR:     LocaleFR,
	CountryES:     LocaleES,
	CountryIT:     LocaleIT,
	CountryUK:     LocaleEN,
	CountryUS:     LocaleEN,
	CountryAU:     LocaleEN,
}

// IsValidLocale reports whether code is a supported locale
func IsValidLocale(code string) bool {
	_, ok := localeNames[Locale(code)]
	return ok
}

// IsValidCountry reports whether code is a supported country
func IsValidCountry(code string) bool {
	_, ok := countryNames[Country(code)]
	return ok
}

// DefaultLocaleFor returns the primary locale for a country.
// Unknown countries fall back to DefaultLocale rather than failing.
func DefaultLocaleFor(country Country) Locale {
	if locale, ok := countryLocales[country]; ok {
		return locale
	}
	return DefaultLocale
}

// LocaleName returns the native display name for a locale ("" if unknown)
func LocaleName(locale Locale) string {
	return localeNames[locale]
}

// CountryName returns the English display name for a country ("" if unknown)
func CountryName(country Country) string {
	return countryNames[country]
}

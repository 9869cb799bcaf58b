package i18n

import (
	"fmt"
	"time"
)

// monthNames holds full month names per locale, January first
var monthNames = map[Locale][12]string{
	LocaleEN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	LocaleNL: {"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
	LocaleDE: {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	LocaleFR: {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	LocaleES: {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	LocaleIT: {"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
}

// FormatDate renders an ISO 8601 date (YYYY-MM-DD) as display text for
// the given locale. Malformed input is returned unchanged: this feeds
// page text where an unformatted date is better than a failure.
func FormatDate(isoDate string, locale Locale) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}

	months, ok := monthNames[locale]
	if !ok {
		months = monthNames[DefaultLocale]
	}
	month := months[t.Month()-1]

	switch locale {
	case LocaleDE:
		// German uses an ordinal point after the day
		return fmt.Sprintf("%d. %s %d", t.Day(), month, t.Year())
	case LocaleES:
		return fmt.Sprintf("%d de %s de %d", t.Day(), month, t.Year())
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
}

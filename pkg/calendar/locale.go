package calendar

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale holds the symbol tables and week convention for a language.
type Locale struct {
	Tag          language.Tag
	FirstWeekday int
	// Weekdays are short weekday symbols, index 0 = Sunday.
	Weekdays [7]string
	// Months are month names as the locale writes them mid-sentence.
	Months [12]string
}

var locales = []Locale{
	{
		Tag:          language.AmericanEnglish,
		FirstWeekday: 1,
		Weekdays:     [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		Months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	{
		Tag:          language.BritishEnglish,
		FirstWeekday: 2,
		Weekdays:     [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		Months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	{
		Tag:          language.German,
		FirstWeekday: 2,
		Weekdays:     [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
	},
	{
		Tag:          language.French,
		FirstWeekday: 2,
		Weekdays:     [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
		Months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	},
	{
		Tag:          language.Spanish,
		FirstWeekday: 2,
		Weekdays:     [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
		Months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	},
	{
		Tag:          language.BrazilianPortuguese,
		FirstWeekday: 1,
		Weekdays:     [7]string{"do", "se", "te", "qu", "qu", "se", "sá"},
		Months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	},
	{
		Tag:          language.MustParse("ar-SA"),
		FirstWeekday: 7,
		Weekdays:     [7]string{"ح", "ن", "ث", "ر", "خ", "ج", "س"},
		Months: [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
			"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// DefaultLocale is American English: Sunday first.
func DefaultLocale() Locale { return locales[0] }

// LookupLocale resolves a BCP 47 tag to the closest known locale. Tags with
// no close match fall back to DefaultLocale.
func LookupLocale(name string) (Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLocale(), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("calendar: parse locale %q: %w", name, err)
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return DefaultLocale(), nil
	}
	return locales[idx], nil
}

// Locales lists the built-in locale tags.
func Locales() []string {
	names := make([]string, len(locales))
	for i, l := range locales {
		names[i] = l.Tag.String()
	}
	return names
}

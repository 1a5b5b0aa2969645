package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Language string

const (
	Turkish Language = "tr"
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	Italian Language = "it"
)

// languageProfile carries every localized string and day-label rule the
// pipeline needs. Adding a language means adding one entry to profiles.
type languageProfile struct {
	name        string
	dayLabel    func(n int) string
	dayPattern  *regexp.Regexp
	months      [12]string
	tripTitle   func(country string) string
	arrival     func(city string) string
	streetFood  func(city string) string
	filler      func(city string) string
	genericPool [4]func(city string) string
}

var (
	englishDayPattern = regexp.MustCompile(`(?i)\bday\s*(\d+)`)
	turkishDayPattern = regexp.MustCompile(`(?i)(\d+)\.\s*gün`)
)

func englishDayLabel(n int) string { return "Day " + strconv.Itoa(n) }

func turkishDayLabel(n int) string { return strconv.Itoa(n) + ". Gün" }

func suffix(s string) func(string) string {
	return func(city string) string { return city + " " + s }
}

func format(pattern string) func(string) string {
	return func(v string) string { return fmt.Sprintf(pattern, v) }
}

var englishPool = [4]func(string) string{
	format("Explore %s Highlights"),
	suffix("Walking Tour"),
	suffix("Local Market Visit"),
	suffix("Cultural Spot"),
}

var profiles = map[Language]languageProfile{
	Turkish: {
		name:       "Türkçe",
		dayLabel:   turkishDayLabel,
		dayPattern: turkishDayPattern,
		months: [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
		tripTitle:  suffix("Gezi Planı"),
		arrival:    format("%s'e Varış & Otele Yerleşme"),
		streetFood: suffix("Sokak Lezzetleri"),
		filler:     suffix("Keşfi"),
		genericPool: [4]func(string) string{
			suffix("Öne Çıkanlar"),
			suffix("Yürüyüş Turu"),
			suffix("Yerel Pazar Ziyareti"),
			suffix("Kültürel Nokta"),
		},
	},
	English: {
		name:       "English",
		dayLabel:   englishDayLabel,
		dayPattern: englishDayPattern,
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		tripTitle:   suffix("Travel Plan"),
		arrival:     format("Arrival to %s & Hotel Check-in"),
		streetFood:  suffix("Street Food"),
		filler:      suffix("Highlights"),
		genericPool: englishPool,
	},
	Spanish: {
		name:       "Español",
		dayLabel:   englishDayLabel,
		dayPattern: englishDayPattern,
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		tripTitle:   format("Plan de Viaje a %s"),
		arrival:     format("Llegada a %s y Check-in en el Hotel"),
		streetFood:  suffix("Comida Callejera"),
		filler:      suffix("Highlights"),
		genericPool: englishPool,
	},
	French: {
		name:       "Français",
		dayLabel:   englishDayLabel,
		dayPattern: englishDayPattern,
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		tripTitle:   format("Plan de Voyage en %s"),
		arrival:     format("Arrivée à %s & Check-in à l'Hôtel"),
		streetFood:  suffix("Cuisine de Rue"),
		filler:      suffix("Highlights"),
		genericPool: englishPool,
	},
	Italian: {
		name:       "Italiano",
		dayLabel:   englishDayLabel,
		dayPattern: englishDayPattern,
		months: [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		tripTitle:   format("Piano di Viaggio in %s"),
		arrival:     format("Arrivo a %s & Check-in in Hotel"),
		streetFood:  suffix("Cibo di Strada"),
		filler:      suffix("Highlights"),
		genericPool: englishPool,
	},
}

// labelOrder is the order day patterns are tried in. Models sometimes
// answer in English labels for a Turkish prompt, so every pattern is tried.
var labelOrder = []Language{English, Turkish}

// SupportedLanguages lists language codes in a stable order.
func SupportedLanguages() []Language {
	return []Language{Turkish, English, Spanish, French, Italian}
}

// LanguageName returns the native display name, or "" for unknown codes.
func LanguageName(l Language) string {
	return profiles[l].name
}

// ParseLanguage maps a request language code to a Language, defaulting to English.
func ParseLanguage(code string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := profiles[l]; ok {
		return l
	}
	return English
}

// IsSupported reports whether code names one of the pipeline languages.
func IsSupported(code string) bool {
	_, ok := profiles[Language(code)]
	return ok
}

func (l Language) profile() languageProfile {
	if p, ok := profiles[l]; ok {
		return p
	}
	return profiles[English]
}

// DayLabel renders the free-text day label for day n.
func (l Language) DayLabel(n int) string {
	return l.profile().dayLabel(n)
}

// ParseDayIndex extracts the global day index from a label such as
// "Day 3" or "3. Gün". It returns 0 when no pattern matches.
func (l Language) ParseDayIndex(label string) int {
	if n := matchDay(l.profile().dayPattern, label); n > 0 {
		return n
	}
	for _, other := range labelOrder {
		if n := matchDay(profiles[other].dayPattern, label); n > 0 {
			return n
		}
	}
	return 0
}

func matchDay(re *regexp.Regexp, label string) int {
	m := re.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// TripTitle is the localized default plan title for a country.
func (l Language) TripTitle(country string) string {
	return l.profile().tripTitle(country)
}

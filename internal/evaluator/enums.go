package evaluator

import (
	"fmt"
	"strings"
	"unicode"
)

// MediaType is the kind of work being checked.
type MediaType string

const (
	MediaPhoto    MediaType = "photo"
	MediaImage    MediaType = "image"
	MediaAudio    MediaType = "audio"
	MediaVideo    MediaType = "video"
	MediaText     MediaType = "text"
	MediaSoftware MediaType = "software"
	MediaDesign   MediaType = "design"
	MediaOther    MediaType = "other"
)

// SourceType is where the student found the work.
type SourceType string

const (
	SourceInternet        SourceType = "internet"
	SourcePrint           SourceType = "print"
	SourceScientific      SourceType = "scientific"
	SourcePerson          SourceType = "person"
	SourcePurchased       SourceType = "purchased"
	SourceCreativeCommons SourceType = "creative_commons"
	SourceOther           SourceType = "other"
)

// UsageType is how the student intends to use the work.
type UsageType string

const (
	UsagePresentation  UsageType = "presentation"
	UsageWrittenWork   UsageType = "written_work"
	UsageNewsletter    UsageType = "newsletter"
	UsageSchoolWebsite UsageType = "school_website"
	UsageAnnualReport  UsageType = "annual_report"
	UsageLibrary       UsageType = "library"
	UsageCafeteria     UsageType = "cafeteria"
	UsageFacility      UsageType = "facility"
	UsageSocialMedia   UsageType = "social_media"
	UsageBlog          UsageType = "blog"
	UsageVideoProject  UsageType = "video_project"
	UsageCommercial    UsageType = "commercial"
	UsageBook          UsageType = "book"
	UsageArtwork       UsageType = "artwork"
	UsageOther         UsageType = "other"
)

// IsOnline reports whether the usage publishes to an open online audience.
func (u UsageType) IsOnline() bool {
	switch u {
	case UsageSocialMedia, UsageBlog, UsageVideoProject:
		return true
	}
	return false
}

// UsageContext is how a protected work is embedded into the new work.
type UsageContext string

const (
	ContextQuotation   UsageContext = "quotation"
	ContextMainContent UsageContext = "main_content"
	ContextDerivative  UsageContext = "derivative"
	ContextMainImage   UsageContext = "main_image"
	ContextInternal    UsageContext = "internal"
	ContextPublic      UsageContext = "public"
)

// enum maps canonical tags, wizard labels and aliases to one value.
type enum[T ~string] struct {
	kind   string
	order  []T
	labels map[T]string
	lookup map[string]T
}

func newEnum[T ~string](kind string, entries []enumEntry[T]) *enum[T] {
	e := &enum[T]{
		kind:   kind,
		labels: make(map[T]string, len(entries)),
		lookup: make(map[string]T),
	}
	for _, en := range entries {
		e.order = append(e.order, en.value)
		e.labels[en.value] = en.label
		e.lookup[normalizeKey(string(en.value))] = en.value
		e.lookup[normalizeKey(en.label)] = en.value
		for _, a := range en.aliases {
			e.lookup[normalizeKey(a)] = en.value
		}
	}
	return e
}

type enumEntry[T ~string] struct {
	value   T
	label   string
	aliases []string
}

func (e *enum[T]) parse(s string) (T, error) {
	var zero T
	if strings.TrimSpace(s) == "" {
		return zero, nil
	}
	if v, ok := e.lookup[normalizeKey(s)]; ok {
		return v, nil
	}
	return zero, fmt.Errorf("unknown %s %q", e.kind, s)
}

func (e *enum[T]) label(v T) string {
	if l, ok := e.labels[v]; ok {
		return l
	}
	return string(v)
}

// normalizeKey lowercases, strips leading emoji and punctuation, and folds
// separators so "📷 Foto", "foto" and "Foto " match.
func normalizeKey(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

var mediaTypes = newEnum("media type", []enumEntry[MediaType]{
	{MediaPhoto, "📷 Foto", []string{"Photo", "Foto", "Fotografie"}},
	{MediaImage, "🎨 Bild/Grafik", []string{"Image", "Bild", "Grafik", "Illustration"}},
	{MediaAudio, "🎵 Musik/Audio", []string{"Musik", "Music", "Audio"}},
	{MediaVideo, "🎬 Video", []string{"Film"}},
	{MediaText, "📝 Text", []string{"Literatur"}},
	{MediaSoftware, "💻 Software/Code", []string{"Software", "Code"}},
	{MediaDesign, "🎨 Grafik/Design", []string{"Design", "Logo"}},
	{MediaOther, "📦 Sonstiges", []string{"Sonstiges", "Andere"}},
})

var sourceTypes = newEnum("source type", []enumEntry[SourceType]{
	{SourceInternet, "🌐 Internet (Website, Social Media)", []string{"Internet", "Website", "Web"}},
	{SourcePrint, "📚 Buch/Zeitschrift/Zeitung", []string{"Print", "Buch", "Book", "Zeitschrift", "Zeitung"}},
	{SourceScientific, "🎓 Wissenschaftliche Quelle", []string{"Scientific", "Wissenschaft"}},
	{SourcePerson, "👤 Von einer Person direkt erhalten", []string{"Person"}},
	{SourcePurchased, "💰 Gekauft (Stock-Foto, etc.)", []string{"Purchased", "Gekauft", "Stock"}},
	{SourceCreativeCommons, "🎁 Creative Commons / Open Source", []string{"Creative Commons", "CC", "Open Source"}},
	{SourceOther, "📦 Sonstiges", []string{"Sonstiges", "Andere"}},
})

var usageTypes = newEnum("usage type", []enumEntry[UsageType]{
	{UsagePresentation, "🎓 Präsentation (Unterricht)", []string{"Präsentation", "Praesentation", "Presentation", "Unterricht"}},
	{UsageWrittenWork, "📖 Schriftliche Arbeit (Schule/Uni)", []string{"Schriftliche Arbeit", "Written Work", "Maturaarbeit", "Bachelorarbeit"}},
	{UsageNewsletter, "📰 Schul-Newsletter / Elternbrief", []string{"Newsletter", "Elternbrief"}},
	{UsageSchoolWebsite, "🌐 Schulwebsite / Intranet", []string{"Schulwebsite", "Website", "Intranet"}},
	{UsageAnnualReport, "📋 Jahresbericht / Broschüre", []string{"Jahresbericht", "Broschüre", "Annual Report"}},
	{UsageLibrary, "📚 Mediothek (Ausstellung, Katalog)", []string{"Mediothek", "Library", "Bibliothek"}},
	{UsageCafeteria, "🍽️ Mensa (Speisekarte, Poster)", []string{"Mensa", "Cafeteria"}},
	{UsageFacility, "🔧 Hausdienst (Beschilderung, Infotafel)", []string{"Hausdienst", "Facility"}},
	{UsageSocialMedia, "📱 Social Media (Schul-Account)", []string{"Social Media", "Instagram", "TikTok"}},
	{UsageBlog, "✍️ Blogpost", []string{"Blog", "Blogpost", "Online"}},
	{UsageVideoProject, "🎬 Video-Projekt (YouTube, Schul-TV)", []string{"Video-Projekt", "Video Project", "YouTube"}},
	{UsageCommercial, "💼 Kommerzielle Nutzung", []string{"Kommerziell", "Commercial"}},
	{UsageBook, "📚 Buch / E-Book", []string{"E-Book", "Ebook"}},
	{UsageArtwork, "🎨 Eigenes Kunstwerk", []string{"Kunstwerk", "Artwork"}},
	{UsageOther, "📦 Sonstiges", []string{"Sonstiges", "Andere"}},
})

var usageContexts = newEnum("usage context", []enumEntry[UsageContext]{
	{ContextQuotation, "Als Zitat", []string{"zitat", "quote"}},
	{ContextMainContent, "Als Hauptinhalt", []string{"hauptinhalt"}},
	{ContextDerivative, "Bearbeitet", []string{"bearbeitet", "bearbeitung"}},
	{ContextMainImage, "Als Hauptbild", []string{"hauptbild"}},
	{ContextInternal, "Intern", []string{"intern"}},
	{ContextPublic, "Öffentlich", []string{"oeffentlich", "öffentlich"}},
})

func ParseMediaType(s string) (MediaType, error)       { return mediaTypes.parse(s) }
func ParseSourceType(s string) (SourceType, error)     { return sourceTypes.parse(s) }
func ParseUsageType(s string) (UsageType, error)       { return usageTypes.parse(s) }
func ParseUsageContext(s string) (UsageContext, error) { return usageContexts.parse(s) }

// Label returns the German wizard label.
func (m MediaType) Label() string    { return mediaTypes.label(m) }
func (s SourceType) Label() string   { return sourceTypes.label(s) }
func (u UsageType) Label() string    { return usageTypes.label(u) }
func (c UsageContext) Label() string { return usageContexts.label(c) }

func (m *MediaType) UnmarshalText(b []byte) (err error) {
	*m, err = ParseMediaType(string(b))
	return err
}

func (s *SourceType) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSourceType(string(b))
	return err
}

func (u *UsageType) UnmarshalText(b []byte) (err error) {
	*u, err = ParseUsageType(string(b))
	return err
}

func (c *UsageContext) UnmarshalText(b []byte) (err error) {
	*c, err = ParseUsageContext(string(b))
	return err
}

// Options lists the canonical values in wizard order.
func MediaTypes() []MediaType       { return append([]MediaType(nil), mediaTypes.order...) }
func SourceTypes() []SourceType     { return append([]SourceType(nil), sourceTypes.order...) }
func UsageTypes() []UsageType       { return append([]UsageType(nil), usageTypes.order...) }
func UsageContexts() []UsageContext { return append([]UsageContext(nil), usageContexts.order...) }

// ContextsFor returns the usage contexts the wizard offers for a usage type.
func ContextsFor(u UsageType) []UsageContext {
	switch {
	case u == UsageWrittenWork:
		return []UsageContext{ContextQuotation, ContextMainContent, ContextDerivative}
	case u.IsOnline():
		return []UsageContext{ContextQuotation, ContextMainImage}
	case u == UsageLibrary, u == UsageCafeteria, u == UsageFacility:
		return []UsageContext{ContextInternal, ContextPublic}
	default:
		return nil
	}
}

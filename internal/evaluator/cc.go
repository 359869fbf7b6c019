package evaluator

import (
	"fmt"
	"strings"
)

// CCVariant is one of the seven Creative Commons license variants.
type CCVariant string

const (
	CC0      CCVariant = "CC0"
	CCBY     CCVariant = "CC-BY"
	CCBYSA   CCVariant = "CC-BY-SA"
	CCBYND   CCVariant = "CC-BY-ND"
	CCBYNC   CCVariant = "CC-BY-NC"
	CCBYNCSA CCVariant = "CC-BY-NC-SA"
	CCBYNCND CCVariant = "CC-BY-NC-ND"
)

const ccStrictest = CCBYNCND

var ccVariants = []CCVariant{CC0, CCBY, CCBYSA, CCBYND, CCBYNC, CCBYNCSA, CCBYNCND}

var ccDescriptions = map[CCVariant]string{
	CC0:      "Public Domain - keine Einschränkungen",
	CCBY:     "Namensnennung",
	CCBYSA:   "Namensnennung, Weitergabe unter gleichen Bedingungen",
	CCBYND:   "Namensnennung, keine Bearbeitung",
	CCBYNC:   "Namensnennung, nicht kommerziell",
	CCBYNCSA: "Namensnennung, nicht kommerziell, Weitergabe unter gleichen Bedingungen",
	CCBYNCND: "Namensnennung, nicht kommerziell, keine Bearbeitung",
}

// CCVariants lists all variants, most permissive first.
func CCVariants() []CCVariant {
	return append([]CCVariant(nil), ccVariants...)
}

// ParseCCVariant accepts "CC-BY-NC", "cc by nc", "BY-NC" and similar spellings.
func ParseCCVariant(s string) (CCVariant, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	if norm == "" {
		return "", nil
	}
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	norm = strings.TrimSuffix(norm, "-4.0")
	if norm == "CC0" || norm == "CC-0" || norm == "CC-ZERO" {
		return CC0, nil
	}
	if !strings.HasPrefix(norm, "CC-") {
		norm = "CC-" + norm
	}
	for _, v := range ccVariants {
		if string(v) == norm {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown CC license %q", s)
}

func (v *CCVariant) UnmarshalText(b []byte) (err error) {
	*v, err = ParseCCVariant(string(b))
	return err
}

func (v CCVariant) Valid() bool {
	_, ok := ccDescriptions[v]
	return ok
}

// Description is the German short description shown in the license generator.
func (v CCVariant) Description() string {
	return ccDescriptions[v]
}

func (v CCVariant) NonCommercial() bool { return v != CC0 && strings.Contains(string(v), "-NC") }
func (v CCVariant) NoDerivatives() bool { return v != CC0 && strings.Contains(string(v), "-ND") }
func (v CCVariant) ShareAlike() bool    { return v != CC0 && strings.Contains(string(v), "-SA") }

// DeedURL links to the 4.0 legal code summary; empty for unknown variants.
func (v CCVariant) DeedURL() string {
	switch v {
	case CC0:
		return "https://creativecommons.org/publicdomain/zero/1.0/"
	case "":
		return ""
	}
	if !v.Valid() {
		return ""
	}
	return "https://creativecommons.org/licenses/" + strings.ToLower(strings.TrimPrefix(string(v), "CC-")) + "/4.0/"
}

func ccLicensed(a AnswerSet) bool {
	return a.HasCCLicense.IsYes()
}

// effectiveVariant falls back to the strictest variant when the student
// confirmed a CC license but not which one.
func effectiveVariant(a AnswerSet) (CCVariant, bool) {
	if a.CCLicense.Valid() {
		return a.CCLicense, false
	}
	return ccStrictest, true
}

func ruleCC0(a AnswerSet) Outcome {
	return Outcome{
		Category:        CategoryAllowed,
		Title:           "Frei nutzbar (CC0)!",
		Message:         "Der Urheber hat auf alle Rechte verzichtet.",
		AllowedUses:     []string{"Alle Nutzungen erlaubt", "Keine Quellenangabe nötig", "Kommerziell erlaubt"},
		Recommendations: []string{"Gib trotzdem die Quelle an - gute Praxis"},
	}
}

func ruleCCNonCommercialViolation(a AnswerSet) Outcome {
	v, guessed := effectiveVariant(a)
	o := Outcome{
		Category:       CategoryForbidden,
		Title:          "Nicht erlaubt!",
		Message:        "Die CC-Lizenz verbietet kommerzielle Nutzung.",
		RestrictedUses: []string{"Quellenangabe nach TASL-Formel erforderlich"},
		ForbiddenUses:  []string{"Kommerzielle Nutzung nicht erlaubt"},
		Recommendations: []string{
			"Kontaktiere den Urheber für eine kommerzielle Lizenz",
			"Oder nutze ein Werk mit kommerziell-freundlicher Lizenz (CC-BY, CC-BY-SA)",
		},
	}
	if guessed {
		o.NeedsReview = true
		o.Recommendations = append(o.Recommendations, unknownVariantHint(v))
	}
	return o
}

func ruleCCConditions(a AnswerSet) Outcome {
	v, guessed := effectiveVariant(a)
	commercial := commercialUse(a)

	restricted := []string{"Quellenangabe nach TASL-Formel erforderlich"}
	if v.NoDerivatives() {
		restricted = append(restricted, "Keine Bearbeitung erlaubt - nur unverändert nutzen")
	}
	if v.ShareAlike() {
		restricted = append(restricted, "Bearbeitungen müssen unter gleicher Lizenz geteilt werden")
	}

	allowed := []string{"Nutzen und Teilen erlaubt"}
	if !v.NoDerivatives() {
		allowed = append(allowed, "Bearbeitung erlaubt")
	}
	if !v.NonCommercial() {
		allowed = append(allowed, "Kommerziell erlaubt")
	}

	o := Outcome{
		Category:       CategoryConditional,
		Title:          "Erlaubt mit Bedingungen",
		Message:        fmt.Sprintf("Das Werk ist unter %s lizenziert.", v),
		AllowedUses:    allowed,
		RestrictedUses: restricted,
		Recommendations: []string{
			fmt.Sprintf("Quellenangabe: \"Titel\" von Autor, lizenziert unter %s", v),
			"Prüfe die genauen Lizenzbedingungen auf creativecommons.org",
		},
	}
	if v.NonCommercial() && commercial.IsUnknown() {
		o.RestrictedUses = append(o.RestrictedUses, "nur nicht-kommerzielle Nutzung")
		o.NeedsReview = true
	}
	if guessed {
		o.NeedsReview = true
		o.Recommendations = append(o.Recommendations, unknownVariantHint(v))
	}
	return o
}

func unknownVariantHint(v CCVariant) string {
	return fmt.Sprintf("Lizenzvariante unklar: es gelten die strengsten Bedingungen (%s)", v)
}

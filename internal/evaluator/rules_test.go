package evaluator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tris = []Tri{Unknown, Yes, No}

// forEachAnswerSet enumerates every combination of the fields the rule table
// reads, with PublicDomain fixed by the caller.
func forEachAnswerSet(pd Tri, fn func(AnswerSet)) {
	variants := append([]CCVariant{""}, CCVariants()...)
	usages := append([]UsageType{""}, UsageTypes()...)
	contexts := append([]UsageContext{""}, UsageContexts()...)
	for _, hasCC := range tris {
		for _, v := range variants {
			for _, prot := range tris {
				for _, u := range usages {
					for _, pub := range tris {
						for _, c := range contexts {
							for _, lic := range tris {
								for _, com := range tris {
									fn(AnswerSet{
										PublicDomain: pd, HasCCLicense: hasCC, CCLicense: v,
										IsProtected: prot, UsageType: u, IsPublic: pub,
										UsageContext: c, HasLicense: lic, IsCommercial: com,
									})
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestPublicDomainAlwaysAllowed(t *testing.T) {
	forEachAnswerSet(Yes, func(a AnswerSet) {
		o := Evaluate(a)
		if o.Category != CategoryAllowed || o.Rule != "public_domain" {
			t.Fatalf("public domain answers %+v produced %s/%s", a, o.Category, o.Rule)
		}
	})
}

func TestNonCommercialLicenseForbidsCommercialUse(t *testing.T) {
	for _, pd := range []Tri{Unknown, No} {
		forEachAnswerSet(pd, func(a AnswerSet) {
			if !a.HasCCLicense.IsYes() || !a.CCLicense.NonCommercial() || !a.IsCommercial.IsYes() {
				return
			}
			o := Evaluate(a)
			if o.Category != CategoryForbidden {
				t.Fatalf("NC license with commercial use %+v produced %s", a, o.Category)
			}
			if !contains(o.ForbiddenUses, "Kommerzielle Nutzung nicht erlaubt") {
				t.Fatalf("missing forbidden entry for %+v", a)
			}
		})
	}
}

func TestCC0NeverRequiresAttribution(t *testing.T) {
	for _, pd := range []Tri{Unknown, No} {
		forEachAnswerSet(pd, func(a AnswerSet) {
			if !a.HasCCLicense.IsYes() || a.CCLicense != CC0 {
				return
			}
			o := Evaluate(a)
			assertNoMandatoryAttribution(t, o)
		})
	}
}

func TestEvaluateIsTotalAndDeterministic(t *testing.T) {
	for _, pd := range tris {
		forEachAnswerSet(pd, func(a AnswerSet) {
			first := Evaluate(a)
			second := Evaluate(a)
			if first.Title == "" || first.Message == "" || first.Rule == "" {
				t.Fatalf("malformed outcome for %+v: %+v", a, first)
			}
			if first.Color != first.Category.Color() {
				t.Fatalf("color %q does not match category %q", first.Color, first.Category)
			}
			if first.AllowedUses == nil || first.RestrictedUses == nil || first.ForbiddenUses == nil || first.Recommendations == nil {
				t.Fatalf("nil list in outcome for %+v", a)
			}
			b1, _ := json.Marshal(first)
			b2, _ := json.Marshal(second)
			if string(b1) != string(b2) {
				t.Fatalf("re-evaluation differs for %+v", a)
			}
		})
	}
}

func TestOutcomesDoNotShareSlices(t *testing.T) {
	a := AnswerSet{PublicDomain: Yes}
	first := Evaluate(a)
	first.AllowedUses[0] = "mutated"
	assert.NotEqual(t, "mutated", Evaluate(a).AllowedUses[0])
}

func TestExamples(t *testing.T) {
	t.Run("photo in public domain", func(t *testing.T) {
		a := decodeAnswers(t, `{"mediaType":"Photo","publicDomain":true}`)
		o := Evaluate(a)
		assert.Equal(t, CategoryAllowed, o.Category)
		assert.Contains(t, strings.ToLower(o.Title), "frei nutzbar")
	})

	t.Run("NC license used commercially", func(t *testing.T) {
		a := decodeAnswers(t, `{"publicDomain":false,"hasCCLicense":true,"ccLicense":"CC-BY-NC","isCommercial":true}`)
		o := Evaluate(a)
		assert.Equal(t, CategoryForbidden, o.Category)
		assert.Contains(t, o.ForbiddenUses, "Kommerzielle Nutzung nicht erlaubt")
	})

	t.Run("classroom presentation", func(t *testing.T) {
		a := decodeAnswers(t, `{"publicDomain":false,"hasCCLicense":false,"isProtected":true,"usageType":"Präsentation","isPublic":false}`)
		o := Evaluate(a)
		assert.Equal(t, CategoryAllowed, o.Category)
		assert.Contains(t, o.AllowedUses, "Im Klassenzimmer zeigen")
	})

	t.Run("public presentation", func(t *testing.T) {
		a := decodeAnswers(t, `{"publicDomain":false,"hasCCLicense":false,"isProtected":true,"usageType":"Präsentation","isPublic":true}`)
		assert.Equal(t, CategoryForbidden, Evaluate(a).Category)
	})

	t.Run("protected without usage type", func(t *testing.T) {
		o := Evaluate(AnswerSet{IsProtected: Yes})
		assert.Equal(t, CategoryConditional, o.Category)
		assert.Contains(t, strings.ToLower(o.Title), "weitere prüfung nötig")
		assert.True(t, o.NeedsReview)
	})
}

func TestRulesInIsolation(t *testing.T) {
	protected := AnswerSet{PublicDomain: No, HasCCLicense: No, IsProtected: Yes, IsCommercial: No}
	with := func(f func(*AnswerSet)) AnswerSet {
		a := protected
		f(&a)
		return a
	}

	tests := []struct {
		name        string
		answers     AnswerSet
		rule        string
		category    Category
		needsReview bool
	}{
		{"not protected", AnswerSet{IsProtected: No}, "not_protected", CategoryAllowed, false},
		{"cc conditions", AnswerSet{HasCCLicense: Yes, CCLicense: CCBYSA}, "cc_conditions", CategoryConditional, false},
		{"cc variant unknown", AnswerSet{HasCCLicense: Yes}, "cc_conditions", CategoryConditional, true},
		{"cc variant unknown and commercial", AnswerSet{HasCCLicense: Yes, IsCommercial: Yes}, "cc_noncommercial_violation", CategoryForbidden, true},
		{"commercial usage type counts as commercial", AnswerSet{HasCCLicense: Yes, CCLicense: CCBYNC, UsageType: UsageCommercial}, "cc_noncommercial_violation", CategoryForbidden, false},
		{"commercial with license", with(func(a *AnswerSet) { a.IsCommercial = Yes; a.HasLicense = Yes }), "commercial_licensed", CategoryAllowed, false},
		{"commercial without license", with(func(a *AnswerSet) { a.IsCommercial = Yes; a.HasLicense = No }), "commercial_unlicensed", CategoryForbidden, false},
		{"commercial license unknown", with(func(a *AnswerSet) { a.UsageType = UsageCommercial }), "commercial_unlicensed", CategoryForbidden, true},
		{"written private quotation", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = No; a.UsageContext = ContextQuotation }), "written_private_quotation", CategoryAllowed, false},
		{"written private main content", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = No; a.UsageContext = ContextMainContent }), "written_private_main_content", CategoryConditional, false},
		{"written private derivative", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = No; a.UsageContext = ContextDerivative }), "written_private_derivative", CategoryForbidden, false},
		{"written private no context", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = No }), "needs_review", CategoryConditional, true},
		{"written public quotation", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = Yes; a.UsageContext = ContextQuotation }), "written_public_quotation", CategoryAllowed, false},
		{"written public main content", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.IsPublic = Yes; a.UsageContext = ContextMainContent }), "written_public_other", CategoryForbidden, false},
		{"written exposure unknown", with(func(a *AnswerSet) { a.UsageType = UsageWrittenWork; a.UsageContext = ContextDerivative }), "written_public_other", CategoryForbidden, true},
		{"presentation exposure unknown", with(func(a *AnswerSet) { a.UsageType = UsagePresentation }), "presentation_public", CategoryForbidden, true},
		{"social media quotation", with(func(a *AnswerSet) { a.UsageType = UsageSocialMedia; a.UsageContext = ContextQuotation }), "online_quotation", CategoryConditional, false},
		{"blog main image", with(func(a *AnswerSet) { a.UsageType = UsageBlog; a.UsageContext = ContextMainImage }), "online_other", CategoryForbidden, false},
		{"video project no context", with(func(a *AnswerSet) { a.UsageType = UsageVideoProject }), "online_other", CategoryForbidden, true},
		{"newsletter falls to catch-all", with(func(a *AnswerSet) { a.UsageType = UsageNewsletter; a.IsPublic = Yes }), "needs_review", CategoryConditional, true},
		{"protection unknown flags review", AnswerSet{UsageType: UsagePresentation, IsPublic: No}, "presentation_private", CategoryAllowed, true},
		{"commercial unknown flags review", AnswerSet{PublicDomain: No, HasCCLicense: No, IsProtected: Yes, UsageType: UsagePresentation, IsPublic: No}, "presentation_private", CategoryAllowed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Evaluate(tt.answers)
			assert.Equal(t, tt.rule, o.Rule)
			assert.Equal(t, tt.category, o.Category)
			assert.Equal(t, tt.needsReview, o.NeedsReview)
		})
	}
}

func TestCCConditionsRestrictions(t *testing.T) {
	tests := []struct {
		variant    CCVariant
		restricted []string
		allowed    []string
	}{
		{CCBY, []string{"Quellenangabe nach TASL-Formel erforderlich"}, []string{"Nutzen und Teilen erlaubt", "Bearbeitung erlaubt", "Kommerziell erlaubt"}},
		{CCBYSA, []string{"Quellenangabe nach TASL-Formel erforderlich", "Bearbeitungen müssen unter gleicher Lizenz geteilt werden"}, []string{"Nutzen und Teilen erlaubt", "Bearbeitung erlaubt", "Kommerziell erlaubt"}},
		{CCBYND, []string{"Quellenangabe nach TASL-Formel erforderlich", "Keine Bearbeitung erlaubt - nur unverändert nutzen"}, []string{"Nutzen und Teilen erlaubt", "Kommerziell erlaubt"}},
		{CCBYNCSA, []string{"Quellenangabe nach TASL-Formel erforderlich", "Bearbeitungen müssen unter gleicher Lizenz geteilt werden"}, []string{"Nutzen und Teilen erlaubt", "Bearbeitung erlaubt"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			o := Evaluate(AnswerSet{HasCCLicense: Yes, CCLicense: tt.variant, IsCommercial: No})
			assert.Equal(t, tt.restricted, o.RestrictedUses)
			assert.Equal(t, tt.allowed, o.AllowedUses)
			assert.Equal(t, "Das Werk ist unter "+string(tt.variant)+" lizenziert.", o.Message)
		})
	}

	t.Run("NC with commercial unknown adds restriction", func(t *testing.T) {
		o := Evaluate(AnswerSet{HasCCLicense: Yes, CCLicense: CCBYNC})
		assert.Contains(t, o.RestrictedUses, "nur nicht-kommerzielle Nutzung")
		assert.True(t, o.NeedsReview)
	})
}

func TestRulesTable(t *testing.T) {
	rs := Rules()
	require.NotEmpty(t, rs)
	assert.Equal(t, "public_domain", rs[0].Name)
	assert.Equal(t, "needs_review", rs[len(rs)-1].Name)
	assert.True(t, rs[len(rs)-1].Applies(AnswerSet{}))

	seen := map[string]bool{}
	for _, r := range rs {
		assert.False(t, seen[r.Name], "duplicate rule %s", r.Name)
		seen[r.Name] = true
		assert.NotEmpty(t, r.Description)
	}
}

func decodeAnswers(t *testing.T, raw string) AnswerSet {
	t.Helper()
	var a AnswerSet
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return a
}

func assertNoMandatoryAttribution(t *testing.T, o Outcome) {
	t.Helper()
	for _, r := range o.RestrictedUses {
		if strings.Contains(r, "Quellenangabe") {
			t.Fatalf("CC0 outcome lists attribution as restriction: %q", r)
		}
	}
	for _, r := range append(append([]string{}, o.Recommendations...), o.AllowedUses...) {
		if strings.Contains(r, "erforderlich") || strings.Contains(r, "verpflichtend") && !strings.Contains(r, "nicht verpflichtend") {
			t.Fatalf("CC0 outcome marks attribution mandatory: %q", r)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

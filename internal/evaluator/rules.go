package evaluator

// Group orders rules into the four evaluation stages.
type Group string

const (
	GroupPublicDomain   Group = "public_domain"
	GroupCCLicense      Group = "cc_license"
	GroupNotProtected   Group = "not_protected"
	GroupProtectedUsage Group = "protected_usage"
)

// Rule is a guard plus the outcome it produces.
type Rule struct {
	Name        string
	Group       Group
	Description string
	applies     func(AnswerSet) bool
	produce     func(AnswerSet) Outcome
}

// Applies reports whether the rule's guard matches a.
// It does not consider higher-priority rules.
func (r Rule) Applies(a AnswerSet) bool { return r.applies(a) }

// Rule priority (first match wins):
//  1. Public domain - unconditionally free
//  2. CC license - license terms decide
//  3. Not protected - unconditionally free
//  4. Protected usage - usage type and context decide, ending in a catch-all
var rules = []Rule{
	{
		Name: "public_domain", Group: GroupPublicDomain,
		Description: "Work is in the public domain",
		applies:     func(a AnswerSet) bool { return a.PublicDomain.IsYes() },
		produce:     rulePublicDomain,
	},
	{
		Name: "cc0", Group: GroupCCLicense,
		Description: "CC0 waiver, no attribution required",
		applies:     func(a AnswerSet) bool { return ccLicensed(a) && a.CCLicense == CC0 },
		produce:     ruleCC0,
	},
	{
		Name: "cc_noncommercial_violation", Group: GroupCCLicense,
		Description: "NC license and commercial use",
		applies: func(a AnswerSet) bool {
			v, _ := effectiveVariant(a)
			return ccLicensed(a) && v.NonCommercial() && commercialUse(a).IsYes()
		},
		produce: ruleCCNonCommercialViolation,
	},
	{
		Name: "cc_conditions", Group: GroupCCLicense,
		Description: "CC license with attribution and variant restrictions",
		applies:     ccLicensed,
		produce:     ruleCCConditions,
	},
	{
		Name: "not_protected", Group: GroupNotProtected,
		Description: "Work is not protected by copyright",
		applies:     func(a AnswerSet) bool { return a.IsProtected.IsNo() },
		produce:     ruleNotProtected,
	},
	{
		Name: "commercial_licensed", Group: GroupProtectedUsage,
		Description: "Commercial use with a license from the author",
		applies:     func(a AnswerSet) bool { return commercialUse(a).IsYes() && a.HasLicense.IsYes() },
		produce:     ruleCommercialLicensed,
	},
	{
		Name: "commercial_unlicensed", Group: GroupProtectedUsage,
		Description: "Commercial use without a license",
		applies:     func(a AnswerSet) bool { return commercialUse(a).IsYes() },
		produce:     ruleCommercialUnlicensed,
	},
	{
		Name: "written_private_quotation", Group: GroupProtectedUsage,
		Description: "Written work, not published, used as quotation",
		applies:     writtenWork(No, ContextQuotation),
		produce:     ruleWrittenPrivateQuotation,
	},
	{
		Name: "written_private_main_content", Group: GroupProtectedUsage,
		Description: "Written work, not published, used as main content",
		applies:     writtenWork(No, ContextMainContent),
		produce:     ruleWrittenPrivateMainContent,
	},
	{
		Name: "written_private_derivative", Group: GroupProtectedUsage,
		Description: "Written work, not published, work modified",
		applies:     writtenWork(No, ContextDerivative),
		produce:     ruleWrittenPrivateDerivative,
	},
	{
		Name: "written_public_quotation", Group: GroupProtectedUsage,
		Description: "Written work, published or exposure unknown, used as quotation",
		applies: func(a AnswerSet) bool {
			return a.UsageType == UsageWrittenWork && !a.IsPublic.IsNo() && a.UsageContext == ContextQuotation
		},
		produce: ruleWrittenPublicQuotation,
	},
	{
		Name: "written_public_other", Group: GroupProtectedUsage,
		Description: "Written work, published or exposure unknown, not a quotation",
		applies: func(a AnswerSet) bool {
			return a.UsageType == UsageWrittenWork && !a.IsPublic.IsNo()
		},
		produce: ruleWrittenPublicOther,
	},
	{
		Name: "presentation_private", Group: GroupProtectedUsage,
		Description: "Presentation confined to the classroom",
		applies: func(a AnswerSet) bool {
			return a.UsageType == UsagePresentation && a.IsPublic.IsNo()
		},
		produce: rulePresentationPrivate,
	},
	{
		Name: "presentation_public", Group: GroupProtectedUsage,
		Description: "Presentation exposed publicly or exposure unknown",
		applies:     func(a AnswerSet) bool { return a.UsageType == UsagePresentation },
		produce:     rulePresentationPublic,
	},
	{
		Name: "online_quotation", Group: GroupProtectedUsage,
		Description: "Online or social media use as quotation",
		applies: func(a AnswerSet) bool {
			return a.UsageType.IsOnline() && a.UsageContext == ContextQuotation
		},
		produce: ruleOnlineQuotation,
	},
	{
		Name: "online_other", Group: GroupProtectedUsage,
		Description: "Online or social media use other than quotation",
		applies:     func(a AnswerSet) bool { return a.UsageType.IsOnline() },
		produce:     ruleOnlineOther,
	},
	{
		Name: "needs_review", Group: GroupProtectedUsage,
		Description: "No specific rule matched",
		applies:     func(AnswerSet) bool { return true },
		produce:     ruleNeedsReview,
	},
}

// Rules returns the rule table in priority order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Evaluate applies the rule table to a. It is total: the last rule always matches.
func Evaluate(a AnswerSet) Outcome {
	for _, r := range rules {
		if !r.applies(a) {
			continue
		}
		o := r.produce(a)
		o.Rule = r.Name
		// Protected usage rules assume protection and non-commercial use when
		// those answers are open.
		if r.Group == GroupProtectedUsage && (a.IsProtected.IsUnknown() || commercialUse(a).IsUnknown()) {
			o.NeedsReview = true
		}
		return o.normalized()
	}
	return ruleNeedsReview(a).normalized()
}

func rulePublicDomain(AnswerSet) Outcome {
	return Outcome{
		Category:    CategoryAllowed,
		Title:       "Frei nutzbar!",
		Message:     "Das Werk ist gemeinfrei (Public Domain). Du darfst es für jeden Zweck nutzen.",
		AllowedUses: []string{"Alle Nutzungen erlaubt", "Keine Einschränkungen", "Quellenangabe empfohlen, aber nicht verpflichtend"},
		Recommendations: []string{
			"Du kannst das Werk kopieren, verändern und verbreiten",
			"Auch kommerzielle Nutzung ist erlaubt",
			"Gib trotzdem die Quelle an - wissenschaftlicher Standard",
		},
	}
}

func ruleNotProtected(AnswerSet) Outcome {
	return Outcome{
		Category:        CategoryAllowed,
		Title:           "Frei nutzbar!",
		Message:         "Das Werk ist nicht urheberrechtlich geschützt.",
		AllowedUses:     []string{"Alle Nutzungen erlaubt"},
		Recommendations: []string{"Du kannst das Werk frei nutzen"},
	}
}

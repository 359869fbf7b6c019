// Package evaluator maps a student's wizard answers to a copyright outcome.
//
// Evaluate is a pure function: it performs no I/O, never panics and returns
// equal outcomes for equal inputs. Rules are kept in a priority-ordered table
// and the first matching rule wins.
package evaluator

// AnswerSet is the accumulated wizard input. Every field is optional.
// JSON and YAML names match the stored check documents.
type AnswerSet struct {
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	MediaType   MediaType  `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	SourceType  SourceType `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`

	AICreated       Tri `json:"aiCreated,omitempty" yaml:"aiCreated,omitempty"`
	HumanCreativity Tri `json:"humanCreativity,omitempty" yaml:"humanCreativity,omitempty"`

	PublicDomain Tri       `json:"publicDomain,omitempty" yaml:"publicDomain,omitempty"`
	HasCCLicense Tri       `json:"hasCCLicense,omitempty" yaml:"hasCCLicense,omitempty"`
	CCLicense    CCVariant `json:"ccLicense,omitempty" yaml:"ccLicense,omitempty"`
	IsProtected  Tri       `json:"isProtected,omitempty" yaml:"isProtected,omitempty"`

	UsageType    UsageType    `json:"usageType,omitempty" yaml:"usageType,omitempty"`
	IsPublic     Tri          `json:"isPublic,omitempty" yaml:"isPublic,omitempty"`
	UsageContext UsageContext `json:"usageContext,omitempty" yaml:"usageContext,omitempty"`
	HasLicense   Tri          `json:"hasLicense,omitempty" yaml:"hasLicense,omitempty"`
	IsCommercial Tri          `json:"isCommercial,omitempty" yaml:"isCommercial,omitempty"`

	HasSourceAttribution Tri `json:"hasSourceAttribution,omitempty" yaml:"hasSourceAttribution,omitempty"`
	ContactedAuthor      Tri `json:"contactedAuthor,omitempty" yaml:"contactedAuthor,omitempty"`
}

// commercialUse is the explicit commercial answer, or Yes when the usage type
// itself is commercial and the flag was left open.
func commercialUse(a AnswerSet) Tri {
	if !a.IsCommercial.IsUnknown() {
		return a.IsCommercial
	}
	if a.UsageType == UsageCommercial {
		return Yes
	}
	return Unknown
}

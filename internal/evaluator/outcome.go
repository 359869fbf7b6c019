package evaluator

// Category is the severity of an outcome.
type Category string

const (
	CategoryAllowed     Category = "allowed"
	CategoryConditional Category = "conditional"
	CategoryForbidden   Category = "forbidden"
)

// Color is the traffic-light colour shown for the category.
func (c Category) Color() string {
	switch c {
	case CategoryAllowed:
		return "green"
	case CategoryForbidden:
		return "red"
	default:
		return "yellow"
	}
}

// Label is the German badge text used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryAllowed:
		return "Erlaubt"
	case CategoryForbidden:
		return "Nicht erlaubt"
	default:
		return "Mit Bedingungen"
	}
}

// Outcome is the evaluator result. List fields are never nil.
type Outcome struct {
	Category        Category `json:"category"`
	Color           string   `json:"color"`
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	AllowedUses     []string `json:"allowedUses"`
	RestrictedUses  []string `json:"restrictedUses"`
	ForbiddenUses   []string `json:"forbiddenUses"`
	Recommendations []string `json:"recommendations"`
	Rule            string   `json:"rule"`
	NeedsReview     bool     `json:"needsReview"`
}

// Passed is true for outcomes a protocol counts as passed.
func (o Outcome) Passed() bool {
	return o.Category != CategoryForbidden
}

func (o Outcome) normalized() Outcome {
	o.Color = o.Category.Color()
	o.AllowedUses = nonNil(o.AllowedUses)
	o.RestrictedUses = nonNil(o.RestrictedUses)
	o.ForbiddenUses = nonNil(o.ForbiddenUses)
	o.Recommendations = nonNil(o.Recommendations)
	return o
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

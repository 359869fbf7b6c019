package export

import (
	"time"

	"ecrc42/internal/evaluator"
)

// CheckReport is the data printed for one persisted check.
type CheckReport struct {
	ID          string
	Lernname    string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Answers     evaluator.AnswerSet
	Outcome     evaluator.Outcome
}

// Row is one labelled line of the answers table.
type Row struct {
	Label string
	Value string
}

// AnswerRows lists the answered questions in wizard order. Unset answers are
// left out.
func AnswerRows(a evaluator.AnswerSet) []Row {
	var rows []Row
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, Row{Label: label, Value: value})
		}
	}
	tri := func(label string, t evaluator.Tri) {
		if !t.IsUnknown() {
			add(label, t.German())
		}
	}

	add("Beschreibung", a.Description)
	if a.MediaType != "" {
		add("Medientyp", a.MediaType.Label())
	}
	tri("Mit KI erstellt", a.AICreated)
	tri("Menschliche Kreativität", a.HumanCreativity)
	if a.SourceType != "" {
		add("Quelle", a.SourceType.Label())
	}
	tri("Gemeinfrei", a.PublicDomain)
	tri("Creative-Commons-Lizenz", a.HasCCLicense)
	if a.CCLicense != "" {
		add("Lizenzvariante", string(a.CCLicense)+" ("+a.CCLicense.Description()+")")
	}
	tri("Urheberrechtlich geschützt", a.IsProtected)
	if a.UsageType != "" {
		add("Verwendung", a.UsageType.Label())
	}
	tri("Öffentlich zugänglich", a.IsPublic)
	if a.UsageContext != "" {
		add("Art der Verwendung", a.UsageContext.Label())
	}
	tri("Lizenz vorhanden", a.HasLicense)
	tri("Kommerzielle Nutzung", a.IsCommercial)
	tri("Quellenangabe vorhanden", a.HasSourceAttribution)
	tri("Urheber kontaktiert", a.ContactedAuthor)
	return rows
}

// outcomeSection is a titled list of the outcome.
type outcomeSection struct {
	Title string
	Items []string
}

func outcomeSections(o evaluator.Outcome) []outcomeSection {
	all := []outcomeSection{
		{Title: "Erlaubte Nutzungen", Items: o.AllowedUses},
		{Title: "Einschränkungen", Items: o.RestrictedUses},
		{Title: "Nicht erlaubt", Items: o.ForbiddenUses},
		{Title: "Empfehlungen", Items: o.Recommendations},
	}
	var out []outcomeSection
	for _, s := range all {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// CheckReport renders a check in the requested format.
func (r *Renderer) CheckReport(rep CheckReport, f Format) (*File, error) {
	name := "ECRC42_Pruefbericht_" + fileSafe(rep.ID) + "." + string(f)
	var (
		body []byte
		err  error
	)
	switch f {
	case FormatHTML:
		body, err = r.checkHTML(rep)
	default:
		f = FormatPDF
		body, err = r.checkPDF(rep)
	}
	if err != nil {
		return nil, err
	}
	return &File{Name: name, ContentType: f.ContentType(), Body: body}, nil
}

func statusLabel(s string) string {
	if s == "completed" {
		return "Abgeschlossen"
	}
	return "Entwurf"
}

func (r *Renderer) checkPDF(rep CheckReport) ([]byte, error) {
	d := r.newPDF("Prüfbericht", "ECRC42 - EduCopyrightCheck | Urheberrecht verstehen & anwenden")
	d.banner(colorBlue, "ECRC42", "Prüfbericht Urheberrechts-Check")

	d.field("Lernname: ", rep.Lernname)
	d.field("Erstellt am: ", r.date(rep.CreatedAt))
	if rep.CompletedAt != nil {
		d.field("Abgeschlossen am: ", r.date(*rep.CompletedAt))
	}
	d.field("Status: ", statusLabel(rep.Status))
	d.gap(4)
	d.rule()

	d.heading("Angaben", 14)
	for _, row := range AnswerRows(rep.Answers) {
		d.field(row.Label+": ", row.Value)
	}
	d.gap(4)
	d.rule()

	o := rep.Outcome
	d.heading("Ergebnis", 14)
	c := categoryColor(o.Category.Color())
	d.pdf.SetFillColor(c.r, c.g, c.b)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(45, 8, d.tr(o.Category.Label()), "", 1, "C", true, 0, "")
	d.color(colorText)
	d.gap(2)
	d.heading(o.Title, 12)
	d.para(o.Message)
	for _, s := range outcomeSections(o) {
		d.gap(2)
		d.heading(s.Title, 11)
		for _, item := range s.Items {
			d.bullet(item)
		}
	}
	if o.NeedsReview {
		d.gap(4)
		d.color(colorMuted)
		d.para("Einige Angaben waren unklar. Bitte lass das Ergebnis von einer Lehrperson prüfen.")
	}
	return d.bytes()
}

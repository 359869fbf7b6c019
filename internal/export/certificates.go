package export

import (
	"fmt"
	"strings"
	"time"

	"ecrc42/internal/evaluator"
	usermodels "ecrc42/internal/user/models"
)

const (
	footerPlatform = "ECRC42 - EduCopyrightCheck | Urheberrecht verstehen & anwenden"
	footerLicense  = "Erstellt mit ECRC42 - EduCopyrightCheck"
)

// ActivityCertificate confirms participation in the training.
type ActivityCertificate struct {
	Lernname string
	Activity usermodels.Activity
}

func (r *Renderer) ActivityCertificate(c ActivityCertificate) (*File, error) {
	d := r.newPDF("Aktivitätszertifikat", footerPlatform)
	d.banner(colorBlue, "ECRC42", "EduCopyrightCheck")

	d.centered("Aktivitätszertifikat", "B", 22)
	d.gap(10)
	d.centered("Hiermit wird bestätigt, dass", "", 12)
	d.gap(4)
	d.color(colorBlue)
	d.centered(c.Lernname, "B", 18)
	d.color(colorText)
	d.gap(4)
	d.centered("erfolgreich am interaktiven Urheberrechts-Training teilgenommen hat.", "", 12)
	d.gap(12)

	d.heading("Aktivitäten:", 13)
	d.bullet(fmt.Sprintf("Geprüfte Medienprodukte: %d", c.Activity.CheckedProducts))
	d.bullet(fmt.Sprintf("Getaggte Fallbeispiele: %d", c.Activity.TaggedCases))
	d.bullet(fmt.Sprintf("Bewertete Fallbeispiele: %d", c.Activity.LikedCases))
	d.gap(6)
	d.heading(fmt.Sprintf("Gesamtaktivität: %d Interaktionen", c.Activity.Total()), 12)
	d.gap(10)
	d.color(colorMuted)
	d.centered("Ausgestellt am "+r.date(r.now()), "", 10)

	body, err := d.bytes()
	if err != nil {
		return nil, err
	}
	return pdfFile("Aktivitaetszertifikat_"+fileSafe(c.Lernname), body), nil
}

// ProtocolEntry is one check listed in the protocol.
type ProtocolEntry struct {
	MediaType   string
	Description string
	CCLicense   string
	Passed      bool
}

// Protocol summarises all checks of a student.
type Protocol struct {
	Lernname        string
	CheckedProducts int
	Entries         []ProtocolEntry
}

func (r *Renderer) Protocol(p Protocol) (*File, error) {
	var passed, failed []ProtocolEntry
	for _, e := range p.Entries {
		if e.Passed {
			passed = append(passed, e)
		} else {
			failed = append(failed, e)
		}
	}

	d := r.newPDF("Urheberrechts-Protokoll", footerPlatform)
	d.banner(colorGreen, "Urheberrechts-Protokoll", "ECRC42 - EduCopyrightCheck")

	d.heading("Protokoll der Urheberrechtsprüfungen", 16)
	d.field("Lernname: ", p.Lernname)
	d.field("Anzahl geprüfter Produkte: ", fmt.Sprint(p.CheckedProducts))
	d.field("Erstellt am: ", r.date(r.now()))
	d.gap(4)
	d.rule()

	d.heading(fmt.Sprintf("Bestandene Prüfungen: %d", len(passed)), 13)
	for _, e := range passed {
		d.bullet(entryLine(e))
		if e.CCLicense != "" {
			d.pdf.SetX(pageMargin + 8)
			d.pdf.SetFont("Helvetica", "I", 10)
			d.pdf.MultiCell(0, lineHeight, d.tr("Lizenz: "+printable(e.CCLicense)), "", "L", false)
		}
	}
	d.gap(6)
	d.heading(fmt.Sprintf("Zu überarbeitende Produkte: %d", len(failed)), 13)
	for _, e := range failed {
		d.bullet(entryLine(e))
	}

	body, err := d.bytes()
	if err != nil {
		return nil, err
	}
	return pdfFile("Urheberrechts-Protokoll_"+fileSafe(p.Lernname), body), nil
}

func entryLine(e ProtocolEntry) string {
	if e.Description == "" {
		return e.MediaType
	}
	return e.MediaType + ": " + e.Description
}

// CCEntry is one product released under a Creative Commons license.
type CCEntry struct {
	MediaType   string
	Description string
	License     evaluator.CCVariant
	CreatedAt   time.Time
}

// CCCertificates lists one license page per CC licensed product.
type CCCertificates struct {
	Lernname string
	Entries  []CCEntry
}

func (r *Renderer) CCCertificates(c CCCertificates) (*File, error) {
	if len(c.Entries) == 0 {
		return nil, ErrNothingToCertify
	}
	d := r.newPDF("Creative Commons Lizenzdokument", footerPlatform)
	for i, e := range c.Entries {
		if i > 0 {
			d.pdf.AddPage()
		}
		d.banner(colorPurple, "Creative Commons", "Lizenzdokument")
		d.heading("Lizenzinformation", 16)
		d.gap(2)
		d.heading("Medienprodukt:", 12)
		d.field("Art: ", e.MediaType)
		d.field("Beschreibung: ", e.Description)
		d.gap(4)
		d.heading("Gewählte Lizenz:", 12)
		d.color(colorPurple)
		d.para(string(e.License) + " - " + e.License.Description())
		d.color(colorText)
		if url := e.License.DeedURL(); url != "" {
			d.para(url)
		}
		d.gap(4)
		d.para("Dieses Werk ist lizenziert unter der oben genannten Creative Commons Lizenz.")
		d.gap(4)
		d.field("Urheber: ", c.Lernname)
		d.field("Erstellt am: ", r.date(e.CreatedAt))
	}
	body, err := d.bytes()
	if err != nil {
		return nil, err
	}
	return pdfFile("CC-Lizenzen_"+fileSafe(c.Lernname), body), nil
}

// LicenseDeclaration is the author's declaration for a generated license.
type LicenseDeclaration struct {
	Title               string
	MediaType           string
	AuthorName          string
	Description         string
	WorkLink            string
	CreativeWork        []string
	IndividualCharacter []string
	ExpressionForms     []string
	License             evaluator.CCVariant
	CreatedAt           time.Time
}

func (r *Renderer) LicenseDeclaration(l LicenseDeclaration) (*File, error) {
	d := r.newPDF("Creative Commons Lizenz-Zertifikat", footerLicense)
	d.banner(colorPurple, "Creative Commons Lizenz-Zertifikat", "ECRC42 - EduCopyrightCheck")

	d.heading("1. Werk-Details", 14)
	d.field("Titel: ", l.Title)
	d.field("Art des Werks: ", l.MediaType)
	d.field("Urheber: ", l.AuthorName)
	d.field("Beschreibung: ", l.Description)
	d.field("Link: ", l.WorkLink)
	d.gap(4)

	d.heading("2. Nachweis des Urheberrechtsschutzes", 14)
	reasons := []struct {
		title string
		items []string
	}{
		{"A) Geistige Schöpfung", l.CreativeWork},
		{"B) Individueller Charakter", l.IndividualCharacter},
		{"C) Form des Ausdrucks", l.ExpressionForms},
	}
	for _, sec := range reasons {
		d.heading(sec.title, 11)
		for _, item := range sec.items {
			d.bullet(item)
		}
		d.gap(2)
	}
	d.gap(2)

	d.heading("3. Gewählte Creative Commons Lizenz", 14)
	d.color(colorPurple)
	d.heading(string(l.License), 12)
	d.color(colorText)
	d.para(l.License.Description())
	d.field("Lizenz-Details: ", l.License.DeedURL())
	d.gap(6)
	d.rule()

	author := strings.TrimSpace(l.AuthorName)
	d.para(fmt.Sprintf("Hiermit erkläre ich, %s, dass ich Urheber des oben genannten Werks bin "+
		"und es unter der gewählten Creative Commons Lizenz zur Verfügung stelle.", author))
	d.gap(18)

	y := d.pdf.GetY()
	half := (d.width - 2*pageMargin) / 2
	d.pdf.Line(pageMargin, y, pageMargin+half-10, y)
	d.pdf.Line(pageMargin+half+10, y, d.width-pageMargin, y)
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetXY(pageMargin, y+1)
	d.pdf.CellFormat(half-10, 5, d.tr("Unterschrift"), "", 0, "L", false, 0, "")
	d.pdf.SetX(pageMargin + half + 10)
	d.pdf.CellFormat(half-10, 5, d.tr("Ort, Datum"), "", 1, "L", false, 0, "")
	d.pdf.SetX(pageMargin + half + 10)
	d.pdf.CellFormat(half-10, 5, d.tr(r.date(l.CreatedAt)), "", 1, "L", false, 0, "")

	body, err := d.bytes()
	if err != nil {
		return nil, err
	}
	return pdfFile("CC-Lizenz_"+fileSafe(l.Title), body), nil
}

func pdfFile(base string, body []byte) *File {
	return &File{Name: base + ".pdf", ContentType: FormatPDF.ContentType(), Body: body}
}

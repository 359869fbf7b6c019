package export

import (
	"bytes"
	"fmt"
	"html/template"
)

var checkTemplate = template.Must(template.New("check").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Prüfbericht {{.ID}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; max-width: 760px; margin: 2rem auto; }
header { background: #3b82f6; color: #fff; padding: 1rem 1.5rem; border-radius: 8px; }
dt { font-weight: bold; margin-top: .5rem; }
.badge { display: inline-block; padding: .25rem .75rem; border-radius: 999px; color: #fff; }
.green { background: #10b981; } .yellow { background: #eab308; } .red { background: #ef4444; }
footer { margin-top: 2rem; color: #6b7280; font-size: .8rem; text-align: center; }
</style>
</head>
<body>
<header><h1>ECRC42</h1><p>Prüfbericht Urheberrechts-Check</p></header>
<p><strong>Lernname:</strong> {{.Lernname}}<br>
<strong>Erstellt am:</strong> {{.Created}}{{if .Completed}}<br>
<strong>Abgeschlossen am:</strong> {{.Completed}}{{end}}<br>
<strong>Status:</strong> {{.Status}}</p>
<h2>Angaben</h2>
<dl>{{range .Rows}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>{{end}}
</dl>
<h2>Ergebnis</h2>
<p><span class="badge {{.Outcome.Color}}">{{.Outcome.Category.Label}}</span></p>
<h3>{{.Outcome.Title}}</h3>
<p>{{.Outcome.Message}}</p>
{{range .Sections}}<h4>{{.Title}}</h4>
<ul>{{range .Items}}
<li>{{.}}</li>{{end}}
</ul>
{{end}}{{if .Outcome.NeedsReview}}<p><em>Einige Angaben waren unklar. Bitte lass das Ergebnis von einer Lehrperson prüfen.</em></p>
{{end}}<footer>ECRC42 - EduCopyrightCheck | Urheberrecht verstehen &amp; anwenden</footer>
</body>
</html>
`))

func (r *Renderer) checkHTML(rep CheckReport) ([]byte, error) {
	data := struct {
		CheckReport
		Created   string
		Completed string
		Status    string
		Rows      []Row
		Sections  []outcomeSection
	}{
		CheckReport: rep,
		Created:     r.date(rep.CreatedAt),
		Status:      statusLabel(rep.Status),
		Rows:        AnswerRows(rep.Answers),
		Sections:    outcomeSections(rep.Outcome),
	}
	if rep.CompletedAt != nil {
		data.Completed = r.date(*rep.CompletedAt)
	}
	var buf bytes.Buffer
	if err := checkTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}

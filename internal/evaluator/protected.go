package evaluator

func writtenWork(public Tri, ctx UsageContext) func(AnswerSet) bool {
	return func(a AnswerSet) bool {
		return a.UsageType == UsageWrittenWork && a.IsPublic == public && a.UsageContext == ctx
	}
}

func ruleCommercialLicensed(AnswerSet) Outcome {
	return Outcome{
		Category:        CategoryAllowed,
		Title:           "Erlaubt mit Lizenz!",
		Message:         "Du hast eine Lizenz vom Urheber.",
		AllowedUses:     []string{"Nutzung gemäss Lizenzvertrag"},
		Recommendations: []string{"Halte dich an die Lizenzvereinbarung"},
	}
}

func ruleCommercialUnlicensed(a AnswerSet) Outcome {
	return Outcome{
		Category:      CategoryForbidden,
		Title:         "Lizenz erforderlich!",
		Message:       "Für kommerzielle Nutzung brauchst du eine Lizenz.",
		ForbiddenUses: []string{"Kommerzielle Nutzung ohne Lizenz"},
		Recommendations: []string{
			"Kontaktiere den Urheber",
			"Kaufe eine Lizenz (z.B. bei Stock-Foto-Agenturen)",
			"Nutze CC-lizenzierte oder gemeinfreie Alternativen",
		},
		NeedsReview: a.HasLicense.IsUnknown(),
	}
}

func ruleWrittenPrivateQuotation(AnswerSet) Outcome {
	return Outcome{
		Category:       CategoryAllowed,
		Title:          "Erlaubt als Zitat!",
		Message:        "Zitatrecht (Art. 25 URG) gilt.",
		AllowedUses:    []string{"Als Zitat mit Quellenangabe", "Für Analyse/Erläuterung"},
		RestrictedUses: []string{"Nur angemessener Umfang", "Quelle vollständig angeben"},
		Recommendations: []string{
			"Gib Autor, Titel, Jahr, Quelle an",
			"Zitat muss deiner Argumentation dienen",
			"Deine Arbeit muss überwiegen",
		},
	}
}

func ruleWrittenPrivateMainContent(AnswerSet) Outcome {
	return Outcome{
		Category:       CategoryConditional,
		Title:          "Grauzone",
		Message:        "Eigengebrauch für Bildung (Art. 19 URG).",
		AllowedUses:    []string{"Für private Abgabe beim Lehrer"},
		RestrictedUses: []string{"Nicht öffentlich teilen", "Nur im Bildungskontext"},
		ForbiddenUses:  []string{"Online-Publikation", "Weitergabe an Dritte"},
		Recommendations: []string{
			"Sicherer: Als Zitat verwenden",
			"Oder Erlaubnis vom Urheber einholen",
		},
	}
}

func ruleWrittenPrivateDerivative(AnswerSet) Outcome {
	return Outcome{
		Category:      CategoryForbidden,
		Title:         "Nicht erlaubt!",
		Message:       "Bearbeitung braucht Erlaubnis des Urhebers.",
		ForbiddenUses: []string{"Bearbeitung ohne Erlaubnis"},
		Recommendations: []string{
			"Kontaktiere den Urheber",
			"Oder nutze das Original als Zitat",
			"Oder schaffe freie Benutzung (völlig neu)",
		},
	}
}

func ruleWrittenPublicQuotation(a AnswerSet) Outcome {
	return Outcome{
		Category:       CategoryAllowed,
		Title:          "Erlaubt als Zitat!",
		Message:        "Zitatrecht gilt auch bei Publikation.",
		AllowedUses:    []string{"Als Zitat mit Quellenangabe"},
		RestrictedUses: []string{"Nur angemessener Umfang", "Quelle vollständig angeben"},
		Recommendations: []string{
			"Bei Bachelor-/Masterarbeiten im Repository: Zitat ist OK",
			"Komplette Bilder als Hauptcontent: problematisch",
		},
		NeedsReview: a.IsPublic.IsUnknown(),
	}
}

func ruleWrittenPublicOther(a AnswerSet) Outcome {
	return Outcome{
		Category:      CategoryForbidden,
		Title:         "Nicht erlaubt!",
		Message:       "Öffentliche Nutzung braucht Lizenz oder muss Zitat sein.",
		ForbiddenUses: []string{"Als Hauptinhalt ohne Lizenz"},
		Recommendations: []string{
			"Nutze nur als Zitat",
			"Oder hole Lizenz ein",
			"Oder nutze CC-lizenzierte Alternativen",
		},
		NeedsReview: a.IsPublic.IsUnknown() || a.UsageContext == "",
	}
}

func rulePresentationPrivate(AnswerSet) Outcome {
	return Outcome{
		Category:       CategoryAllowed,
		Title:          "Erlaubt für Unterricht!",
		Message:        "Unterrichtsausnahme (Art. 19 URG) gilt.",
		AllowedUses:    []string{"Im Klassenzimmer zeigen", "Auf Klassen-Moodle teilen"},
		RestrictedUses: []string{"Nur für konkrete Klasse", "Nicht öffentlich zugänglich"},
		ForbiddenUses:  []string{"Auf Schulwebsite posten", "Online für alle teilen"},
		Recommendations: []string{
			"Zeige es im Unterricht",
			"Oder teile es nur mit der Klasse (geschütztes LMS)",
		},
	}
}

func rulePresentationPublic(a AnswerSet) Outcome {
	return Outcome{
		Category:      CategoryForbidden,
		Title:         "Nicht erlaubt!",
		Message:       "Öffentliche Präsentationen brauchen Lizenz.",
		ForbiddenUses: []string{"Online für alle teilen"},
		Recommendations: []string{
			"Hole Lizenz ein",
			"Oder nutze CC-lizenzierte Bilder",
			"Oder verlinke statt einzubetten",
		},
		NeedsReview: a.IsPublic.IsUnknown(),
	}
}

func ruleOnlineQuotation(AnswerSet) Outcome {
	return Outcome{
		Category:       CategoryConditional,
		Title:          "Erlaubt als Zitat",
		Message:        "Zitatrecht gilt online, aber mit strengen Regeln.",
		AllowedUses:    []string{"Als Zitat mit Quellenangabe"},
		RestrictedUses: []string{"Nur zur Erläuterung", "Angemessener Umfang"},
		ForbiddenUses:  []string{"Als Hauptbild ohne Bezug"},
		Recommendations: []string{
			"Zitat muss deinem Text dienen",
			"Nicht nur dekorativ",
			"Quellenangabe vollständig",
		},
	}
}

func ruleOnlineOther(a AnswerSet) Outcome {
	return Outcome{
		Category:      CategoryForbidden,
		Title:         "Lizenz erforderlich!",
		Message:       "Online-Nutzung braucht Erlaubnis.",
		ForbiddenUses: []string{"Als Hauptbild ohne Lizenz"},
		Recommendations: []string{
			"Hole Erlaubnis vom Urheber",
			"Nutze CC-lizenzierte Bilder (Unsplash, Pixabay)",
			"Oder nutze nur als Zitat",
		},
		NeedsReview: a.UsageContext == "",
	}
}

func ruleNeedsReview(AnswerSet) Outcome {
	return Outcome{
		Category: CategoryConditional,
		Title:    "Weitere Prüfung nötig",
		Message:  "Die Situation ist komplex.",
		Recommendations: []string{
			"Kontaktiere das IGE (www.ige.ch)",
			"Oder hole dir rechtliche Beratung",
			"Im Zweifel: Alternative nutzen",
		},
		NeedsReview: true,
	}
}

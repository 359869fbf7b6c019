package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ecrc42/internal/evaluator"
)

// loadAnswers reads a YAML (or JSON) answer file. "-" reads stdin.
func loadAnswers(path string, stdin io.Reader) (evaluator.AnswerSet, error) {
	var a evaluator.AnswerSet
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return a, fmt.Errorf("opening answers: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && err != io.EOF {
		return a, fmt.Errorf("parsing answers: %w", err)
	}
	return a, nil
}

package analysis

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PromptBuilder renders the two analysis prompts from embedded templates.
type PromptBuilder struct {
	templates map[string]*template.Template
}

// promptData is the template input for both prompts.
type promptData struct {
	Text string
}

// NewPromptBuilder loads and parses the prompt templates. A parse failure
// is a construction-time misconfiguration, surfaced once here rather than
// per-request.
func NewPromptBuilder() (*PromptBuilder, error) {
	pb := &PromptBuilder{templates: make(map[string]*template.Template)}

	for _, name := range []string{"interpretation_prompt", "extraction_prompt"} {
		filename := fmt.Sprintf("templates/%s.tmpl", name)
		tmpl, err := template.New(fmt.Sprintf("%s.tmpl", name)).ParseFS(templateFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pb.templates[name] = tmpl
	}

	return pb, nil
}

// InterpretationPrompt builds the free-form narrative prompt for the given
// report text.
func (pb *PromptBuilder) InterpretationPrompt(text string) (string, error) {
	return pb.render("interpretation_prompt", promptData{Text: text})
}

// ExtractionPrompt builds the strict-JSON extraction prompt for the given
// report text.
func (pb *PromptBuilder) ExtractionPrompt(text string) (string, error) {
	return pb.render("extraction_prompt", promptData{Text: text})
}

func (pb *PromptBuilder) render(name string, data promptData) (string, error) {
	tmpl, ok := pb.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not loaded", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

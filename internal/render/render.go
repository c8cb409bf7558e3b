package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	// css marks a value built from trusted palette and layout tables as
	// safe for a style attribute.
	"css": func(s string) template.CSS { return template.CSS(s) },
	"add": func(a, b int) int { return a + b },
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

const (
	emailTemplate   = "email.html.tmpl"
	signageTemplate = "signage.html.tmpl"
)

// WriteEmail renders a weekly email
func WriteEmail(w io.Writer, e Email) error {
	return execute(w, emailTemplate, e)
}

// WriteSignage renders the daily signage page
func WriteSignage(w io.Writer, s Signage) error {
	return execute(w, signageTemplate, s)
}

// EmailHTML renders a weekly email to a byte slice
func EmailHTML(e Email) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteEmail(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SignageHTML renders the signage page to a byte slice
func SignageHTML(s Signage) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSignage(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

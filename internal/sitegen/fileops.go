// fileops.go - Preview page rendering and output
package sitegen

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed templates/*.html
var EmbeddedFiles embed.FS

// PageData is passed to preview page templates.
type PageData struct {
	Title      string
	Stylesheet template.CSS
	Content    template.HTML
}

// loadTemplate resolves templateOpt to a page template. An existing file
// path or any .html path is read from disk; anything else names an embedded
// template ("default" when empty).
func loadTemplate(templateOpt string) (*template.Template, error) {
	if templateOpt == "" {
		templateOpt = "default"
	}

	if fileExists(templateOpt) || filepath.IsAbs(templateOpt) || filepath.Ext(templateOpt) == ".html" {
		return template.ParseFiles(templateOpt)
	}
	return template.ParseFS(EmbeddedFiles, "templates/"+templateOpt+".html")
}

// RenderHTMLPage wraps rendered cards in a standalone page.
func RenderHTMLPage(data PageData, templateOpt string) ([]byte, error) {
	tmpl, err := loadTemplate(templateOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to load template '%s': %w", templateOpt, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template '%s': %w", templateOpt, err)
	}
	return buf.Bytes(), nil
}

// WritePage writes a page to dst, creating parent directories as needed.
func WritePage(dst string, page []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create output dir for '%s': %w", dst, err)
	}
	if err := os.WriteFile(dst, page, 0644); err != nil {
		return fmt.Errorf("failed to write HTML file '%s': %w", dst, err)
	}
	return nil
}

// fileExists checks if a file exists on disk
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

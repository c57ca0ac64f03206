package postcard

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/card.html
var templateFS embed.FS

var cardTemplate = template.Must(template.ParseFS(templateFS, "templates/card.html"))

// Render writes the card markup for props to w.
func Render(w io.Writer, props PostProps) error {
	if err := cardTemplate.ExecuteTemplate(w, "card", NewCard(props)); err != nil {
		return fmt.Errorf("failed to render card %q: %w", props.Path, err)
	}
	return nil
}

// RenderList writes a roll of cards in the given order.
func RenderList(w io.Writer, posts []PostProps) error {
	cards := make([]Card, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, NewCard(p))
	}
	if err := cardTemplate.ExecuteTemplate(w, "list", cards); err != nil {
		return fmt.Errorf("failed to render post roll: %w", err)
	}
	return nil
}

// HTML renders the card into a value that can be embedded in other
// html/template pages without being escaped again.
func HTML(props PostProps) (template.HTML, error) {
	var buf bytes.Buffer
	if err := Render(&buf, props); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Component returns the card as a templ component.
func Component(props PostProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, props)
	})
}

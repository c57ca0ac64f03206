// processor.go - Content file to card props conversion
package sitegen

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/CiaranMcAleer/postcard/internal/postcard"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExcerptLength is the maximum excerpt length in characters, before the
// trailing ellipsis.
const ExcerptLength = 140

var htmlRemover = bluemonday.StrictPolicy()

// MarkdownProcessor reads content files and resolves them into card props.
type MarkdownProcessor struct {
	md goldmark.Markdown
}

// NewMarkdownProcessor creates a new markdown processor
func NewMarkdownProcessor() *MarkdownProcessor {
	return &MarkdownProcessor{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				&frontmatter.Extender{},
			),
		),
	}
}

// ProcessMarkdownFile loads inputDir/relPath into card props. The internal
// path is derived from relPath.
func (mp *MarkdownProcessor) ProcessMarkdownFile(inputDir, relPath string) (postcard.PostProps, error) {
	content, err := os.ReadFile(filepath.Join(inputDir, relPath))
	if err != nil {
		return postcard.PostProps{}, fmt.Errorf("failed to read markdown file '%s': %w", relPath, err)
	}
	return mp.Process(content, relPath)
}

// Process resolves raw markdown content into card props.
func (mp *MarkdownProcessor) Process(content []byte, relPath string) (postcard.PostProps, error) {
	parserCtx := parser.NewContext()
	root := mp.md.Parser().Parse(text.NewReader(content), parser.WithContext(parserCtx))

	var record postcard.ContentRecord
	if fm := frontmatter.Get(parserCtx); fm != nil {
		if err := fm.Decode(&record); err != nil {
			return postcard.PostProps{}, fmt.Errorf("invalid frontmatter in '%s': %w", relPath, err)
		}
	}
	if record.Title == "" {
		record.Title = titleFromPath(relPath)
	}

	var buf bytes.Buffer
	if err := mp.md.Renderer().Render(&buf, content, root); err != nil {
		return postcard.PostProps{}, fmt.Errorf("failed to render markdown '%s': %w", relPath, err)
	}

	return postcard.PostProps{
		Info: postcard.Info{
			Frontmatter: record,
			Excerpt:     excerpt(buf.String(), ExcerptLength),
		},
		Path: PathFor(relPath),
	}, nil
}

// PathFor returns the internal route of a content file, e.g.
// "events/intro.md" -> "/events/intro/" and "blog/index.md" -> "/blog/".
func PathFor(relPath string) string {
	p := filepath.ToSlash(relPath)
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" {
		p = path.Dir(p)
	}
	p = strings.Trim(path.Clean(p), "/")
	if p == "" || p == "." {
		return "/"
	}
	return "/" + p + "/"
}

// titleFromPath makes a readable title out of a kebab-case or snake_case
// file name.
func titleFromPath(relPath string) string {
	name := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.Und).String(name)
}

// excerpt strips rendered HTML down to plain text and truncates it at a word
// boundary. limit counts characters, not bytes. A first word longer than
// limit is cut mid-word.
func excerpt(renderedHTML string, limit int) string {
	plain := html.UnescapeString(htmlRemover.Sanitize(renderedHTML))
	words := strings.Fields(plain)

	var b strings.Builder
	count := 0
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if count > 0 {
			n++
		}
		if count+n > limit {
			if count == 0 {
				return string([]rune(word)[:limit]) + "…"
			}
			return b.String() + "…"
		}
		if count > 0 {
			b.WriteString(" ")
		}
		b.WriteString(word)
		count += n
	}
	return b.String()
}

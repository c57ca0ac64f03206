package postcard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, props PostProps) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, props))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderBlogPost(t *testing.T) {
	doc := renderDoc(t, PostProps{
		Info: Info{
			Frontmatter: ContentRecord{Title: "Why Go?", Date: "May 5, 2020", TemplateKey: "blog-post", Where: "Nowhere"},
			Excerpt:     "A short answer.",
		},
		Path: "/blog/why-go/",
	})

	assert.Equal(t, 0, doc.Find(".post-card__label").Length())
	assert.Equal(t, 0, doc.Find(".post-card__event-info").Length())
	assert.Equal(t, "May 5, 2020", doc.Find(".post-card__date").Text())
	assert.Equal(t, "A short answer.", doc.Find(".post-card__excerpt").Text())

	title := doc.Find("h3.post-card__title")
	assert.True(t, title.HasClass("typography--h4"))
	href, _ := title.Find("a").Attr("href")
	assert.Equal(t, "/blog/why-go/", href)

	button := doc.Find(".post-card__button")
	require.Equal(t, 1, button.Length())
	assert.Equal(t, "Read more", button.Text())
	assert.True(t, button.HasClass("button--outlined"))
	nav, _ := button.Attr("data-nav")
	assert.Equal(t, "internal", nav)

	assert.Equal(t, 0, doc.Find("hr.post-card__divider").Length())
}

func TestRenderWorkshopWithLink(t *testing.T) {
	doc := renderDoc(t, PostProps{
		Info: Info{
			Frontmatter: event(false, WorkshopType, "example.com/x"),
			Excerpt:     "Bring a laptop.",
		},
		Path: "/events/intro-to-go/",
	})

	assert.Equal(t, "TND Workshop", doc.Find(".post-card__label").Text())
	assert.True(t, doc.Find("h3.post-card__title").HasClass("typography--h3"))

	info := doc.Find(".post-card__event-info")
	require.Equal(t, 2, info.Length())
	assert.Equal(t, "When: March 3, 2020", info.Eq(0).Text())
	assert.Equal(t, "Where: Belfast", info.Eq(1).Text())
	assert.Equal(t, 0, doc.Find(".post-card__date").Length())

	// The title never follows the external link.
	titleHref, _ := doc.Find(".post-card__title a").Attr("href")
	assert.Equal(t, "/events/intro-to-go/", titleHref)

	button := doc.Find(".post-card__button")
	require.Equal(t, 1, button.Length())
	assert.Equal(t, "Register", button.Text())
	assert.True(t, button.HasClass("button--contained"))
	href, _ := button.Attr("href")
	assert.Equal(t, "http://example.com/x", href)
	rel, _ := button.Attr("rel")
	assert.Equal(t, "external noopener", rel)
	_, internal := button.Attr("data-nav")
	assert.False(t, internal)
}

func TestRenderCommunityEventIgnoresLink(t *testing.T) {
	doc := renderDoc(t, PostProps{
		Info: Info{Frontmatter: event(false, "Women Who Code", "https://wwcode.com")},
		Path: "/events/wwcode/",
	})

	assert.Equal(t, "Community Event", doc.Find(".post-card__label").Text())

	button := doc.Find(".post-card__button")
	assert.Equal(t, "More Info", button.Text())
	href, _ := button.Attr("href")
	assert.Equal(t, "/events/wwcode/", href)
	assert.True(t, button.HasClass("button--outlined"))
}

func TestRenderFeaturedDivider(t *testing.T) {
	doc := renderDoc(t, PostProps{
		Info: Info{Frontmatter: event(true, "Anyone", "")},
		Path: "/events/next/",
	})

	assert.Equal(t, "Next Workshop", doc.Find(".post-card__label").Text())
	assert.Equal(t, 1, doc.Find("article.post-card > hr.post-card__divider").Length())
	// The divider sits after the card content, not inside it.
	assert.Equal(t, 0, doc.Find(".post-card__content hr").Length())
}

func TestRenderOmitsMissingWhere(t *testing.T) {
	record := event(false, WorkshopType, "")
	record.Where = ""

	doc := renderDoc(t, PostProps{Info: Info{Frontmatter: record}, Path: "/events/x/"})

	info := doc.Find(".post-card__event-info")
	require.Equal(t, 1, info.Length())
	assert.Equal(t, "When: March 3, 2020", info.Text())
}

func TestRenderEscapesContent(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, PostProps{
		Info: Info{
			Frontmatter: ContentRecord{Title: "<script>alert(1)</script>"},
			Excerpt:     "a < b",
		},
		Path: "/blog/x/",
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "a &lt; b")
}

func TestRenderList(t *testing.T) {
	posts := []PostProps{
		{Info: Info{Frontmatter: event(true, WorkshopType, "meetup.com/tnd")}, Path: "/events/one/"},
		{Info: Info{Frontmatter: ContentRecord{Title: "Two"}}, Path: "/blog/two/"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, posts))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	cards := doc.Find("section.post-roll > article.post-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Register", cards.Eq(0).Find(".post-card__button").Text())
	assert.Equal(t, "Read more", cards.Eq(1).Find(".post-card__button").Text())
}

func TestHTMLAndComponentMatchRender(t *testing.T) {
	props := PostProps{Info: Info{Frontmatter: event(false, WorkshopType, "")}, Path: "/events/x/"}

	var rendered bytes.Buffer
	require.NoError(t, Render(&rendered, props))

	h, err := HTML(props)
	require.NoError(t, err)
	assert.Equal(t, rendered.String(), string(h))

	var sb strings.Builder
	require.NoError(t, Component(props).Render(context.Background(), &sb))
	assert.Equal(t, rendered.String(), sb.String())
}

package postcard

import "strings"

// ButtonVariant is the visual style of the action button.
type ButtonVariant string

const (
	Contained ButtonVariant = "contained"
	Outlined  ButtonVariant = "outlined"
)

// Action is the single call-to-action button of a card.
type Action struct {
	Href     string
	Text     string
	External bool
	Variant  ButtonVariant
}

// Card is the resolved view model of a post card.
type Card struct {
	Title string
	// Path is the internal route. The title always links here, even when
	// the action button points somewhere else.
	Path    string
	IsEvent bool
	Label   string
	Date    string
	Where   string
	Excerpt string
	Action  Action
	Divider bool
}

// TitleVariant is the typography style of the title heading.
func (c Card) TitleVariant() string {
	if c.IsEvent {
		return "h3"
	}
	return "h4"
}

// NewCard resolves the props into the values shown on the card.
func NewCard(props PostProps) Card {
	post := Classify(props.Info.Frontmatter)
	r := post.Record()

	label, isEvent := post.Label()
	card := Card{
		Title:   r.Title,
		Path:    props.Path,
		IsEvent: isEvent,
		Label:   label,
		Date:    string(r.Date),
		Where:   r.Where,
		Excerpt: props.Info.Excerpt,
		Divider: r.Featured,
	}

	card.Action = Action{
		Href:    LinkTarget(r, props.Path),
		Text:    post.ButtonText(),
		Variant: Outlined,
	}
	if r.HasExternalLink() {
		card.Action.External = true
		card.Action.Variant = Contained
	}

	return card
}

// LinkTarget returns where the action button points: the record's link for
// workshops that have one, the internal path otherwise.
func LinkTarget(r ContentRecord, path string) string {
	if !r.HasExternalLink() {
		return path
	}
	return absoluteLink(r.Link)
}

// absoluteLink prefixes bare hosts with a scheme so the browser does not
// resolve them as site-relative paths.
//
// NOTE: this is a substring match, not a scheme check, so "httpfoo.com" is
// left untouched. Kept as-is until the expected behaviour is confirmed.
func absoluteLink(link string) string {
	if strings.Contains(link, "http") {
		return link
	}
	return "http://" + link
}

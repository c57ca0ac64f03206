// Package postcard renders the blog and event cards shown in post rolls.
package postcard

import (
	"fmt"
	"time"
)

const (
	// EventTemplateKey marks a content record as an event.
	EventTemplateKey = "event-post"

	// WorkshopType is the organiser type of our own workshops. Only these
	// can carry an external registration link.
	WorkshopType = "The New Developers"
)

// ContentRecord is the frontmatter of a single post, as resolved by the
// content loader.
type ContentRecord struct {
	Title       string `yaml:"title" toml:"title"`
	Date        Date   `yaml:"date" toml:"date"`
	Where       string `yaml:"where" toml:"where"`
	TemplateKey string `yaml:"templateKey" toml:"templateKey"`
	Type        string `yaml:"type" toml:"type"`
	Link        string `yaml:"link" toml:"link"`
	Featured    bool   `yaml:"featured" toml:"featured"`
}

// Date is the display date of a post. It is shown as written, so any text
// is accepted.
type Date string

// UnmarshalTOML accepts TOML strings as well as unquoted TOML dates and
// datetimes. Dates without a time of day are kept as YYYY-MM-DD, anything
// else is formatted as RFC 3339.
func (d *Date) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*d = Date(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			*d = Date(v.Format(time.DateOnly))
		} else {
			*d = Date(v.Format(time.RFC3339))
		}
	default:
		return fmt.Errorf("unsupported date value %v (%T)", v, v)
	}
	return nil
}

// IsEvent reports whether the record is an event post.
func (r ContentRecord) IsEvent() bool {
	return r.TemplateKey == EventTemplateKey
}

// IsWorkshop reports whether the record was authored by The New Developers.
func (r ContentRecord) IsWorkshop() bool {
	return r.Type == WorkshopType
}

// HasExternalLink reports whether the action button leaves the site.
func (r ContentRecord) HasExternalLink() bool {
	return r.Link != "" && r.IsWorkshop()
}

// Info is the frontmatter of a post together with its excerpt.
type Info struct {
	Frontmatter ContentRecord
	Excerpt     string
}

// PostProps is everything a card needs for one render.
type PostProps struct {
	Info Info
	// Path is the internal route of the post page.
	Path string
}

// Post is either an EventPost or a BlogPost. Every variant must define all
// of the values that differ between post kinds.
type Post interface {
	Record() ContentRecord
	// Label is the overline shown above event titles. ok is true exactly
	// for event posts, which always carry a label.
	Label() (label string, ok bool)
	ButtonText() string

	sealed()
}

// Classify returns the variant matching the record's template key.
func Classify(r ContentRecord) Post {
	if r.IsEvent() {
		return EventPost{record: r}
	}
	return BlogPost{record: r}
}

// EventPost is a record with the event-post template key.
type EventPost struct {
	record ContentRecord
}

func (p EventPost) Record() ContentRecord { return p.record }

func (p EventPost) Label() (string, bool) {
	switch {
	case p.record.Featured:
		return "Next Workshop", true
	case p.record.IsWorkshop():
		return "TND Workshop", true
	default:
		return "Community Event", true
	}
}

func (p EventPost) ButtonText() string {
	// Workshops should always have a registration link, but fall back to
	// the post page when they don't.
	if p.record.IsWorkshop() && p.record.Link != "" {
		return "Register"
	}
	return "More Info"
}

func (EventPost) sealed() {}

// BlogPost is any record that is not an event.
type BlogPost struct {
	record ContentRecord
}

func (p BlogPost) Record() ContentRecord { return p.record }

func (BlogPost) Label() (string, bool) { return "", false }

func (BlogPost) ButtonText() string { return "Read more" }

func (BlogPost) sealed() {}

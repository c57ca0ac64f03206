package postcard

import (
	"fmt"
	"strconv"
	"strings"
)

// Breakpoint is a named minimum viewport width.
type Breakpoint struct {
	Key   string
	Width int
}

// Theme holds the spacing and breakpoint scale used by the card styles.
type Theme struct {
	SpacingUnit int
	// Breakpoints must be ordered by ascending width.
	Breakpoints []Breakpoint
	Secondary   string
}

// DefaultTheme returns an 8px spacing unit with the standard breakpoints.
func DefaultTheme() Theme {
	return Theme{
		SpacingUnit: 8,
		Breakpoints: []Breakpoint{
			{Key: "xs", Width: 0},
			{Key: "sm", Width: 600},
			{Key: "md", Width: 960},
			{Key: "lg", Width: 1280},
			{Key: "xl", Width: 1920},
		},
		Secondary: "#f50057",
	}
}

// Spacing returns n spacing units as a CSS length.
func (t Theme) Spacing(n int) string {
	return strconv.Itoa(n*t.SpacingUnit) + "px"
}

// Down returns the media query matching viewports narrower than the
// breakpoint following key. It returns "" for unknown keys.
func (t Theme) Down(key string) string {
	for i, bp := range t.Breakpoints {
		if bp.Key != key {
			continue
		}
		if i+1 == len(t.Breakpoints) {
			return "@media (min-width:0px)"
		}
		next := float64(t.Breakpoints[i+1].Width) - 0.05
		return "@media (max-width:" + strconv.FormatFloat(next, 'f', -1, 64) + "px)"
	}
	return ""
}

// Stylesheet returns the CSS for the classes used in the card markup.
func (t Theme) Stylesheet() string {
	var b strings.Builder
	rule := func(class, body string) {
		fmt.Fprintf(&b, ".%s { %s }\n", class, body)
	}

	rule("post-card", "flex-grow: 1; padding: 0; margin-top: 50px;")
	rule("post-card__content", "padding: 0;")
	rule("post-card__button", "margin-top: "+t.Spacing(2)+";")
	rule("post-card__date", "margin-top: "+t.Spacing(1)+";")
	rule("post-card__divider", "background: "+t.Secondary+"; margin-top: "+t.Spacing(5)+";")
	rule("post-card__excerpt", "margin-top: "+t.Spacing(2)+";")

	if mq := t.Down("xs"); mq != "" {
		fmt.Fprintf(&b, "%s {\n", mq)
		b.WriteString("  .post-card__event-info { font-size: 1em; }\n")
		b.WriteString("  .post-card__title { font-size: 1.75em; }\n")
		b.WriteString("}\n")
	}
	return b.String()
}

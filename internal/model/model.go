package model

// AdaptiveColor picks a color by terminal background. Values are anything
// lipgloss accepts: ANSI indexes ("62") or hex ("#7D56F4").
type AdaptiveColor struct {
	Light string `json:"light,omitempty"`
	Dark  string `json:"dark,omitempty"`
}

func (c *AdaptiveColor) IsZero() bool {
	return c == nil || (c.Light == "" && c.Dark == "")
}

// Style is a per-item or per-role style override.
//
// Border and Padding change an item's height and are honored on items and
// the container only. Origin/target overrides apply colors and emphasis.
type Style struct {
	Foreground       *AdaptiveColor `json:"foreground,omitempty"`
	Background       *AdaptiveColor `json:"background,omitempty"`
	BorderForeground *AdaptiveColor `json:"borderForeground,omitempty"`

	// Border is one of: rounded, normal, thick, double, hidden, none.
	Border  string `json:"border,omitempty"`
	Padding *int   `json:"padding,omitempty"`

	Bold  bool `json:"bold,omitempty"`
	Faint bool `json:"faint,omitempty"`
}

// Item is one entry of a list data source.
type Item struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	// Body is markdown.
	Body  string `json:"body,omitempty"`
	Style *Style `json:"style,omitempty"`
}

// OrderEntry is one row of a final order report.
type OrderEntry struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Title string `json:"title"`
	// Rank is a lexicographic sort key; sorting entries by Rank yields the order.
	Rank string `json:"rank"`
}

// Order is the list order at the end of a session.
type Order struct {
	Mount string       `json:"mount"`
	Moves int          `json:"moves"`
	Items []OrderEntry `json:"items"`
}

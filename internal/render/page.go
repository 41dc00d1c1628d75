// Package render lays out player and game stats as rows of titled boxes and
// writes them as plain text, HTML or terminal cards.
package render

import (
	"fmt"
	"html/template"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	// Plain boxes show only their value.
	Plain Kind = iota
	// Instant boxes add "at <game>" or "before first game".
	Instant
	// Duration boxes add "From <game>" and "to <game>" when known.
	Duration
)

const (
	RedFade  = "#e6b8b7"
	BlueFade = "#b7c9e6"
	White    = "#ffffff"
)

const timeLayout = "2006-01-02 15:04"

type Style struct {
	Background string
	Foreground string
}

// CSS renders the style as an inline declaration list.
func (s Style) CSS() template.CSS {
	var parts []string
	if s.Background != "" {
		parts = append(parts, "background-color: "+s.Background)
	}
	if s.Foreground != "" {
		parts = append(parts, "color: "+s.Foreground)
	}
	return template.CSS(strings.Join(parts, "; "))
}

func (s Style) IsZero() bool {
	return s.Background == "" && s.Foreground == ""
}

type Box struct {
	Title   string
	Value   string
	Kind    Kind
	Style   Style
	Classes []string
	// Href links the value, used for player names.
	Href string
	At   int64
	From int64
	To   int64
}

// Footers returns the annotation lines shown under the value.
func (b Box) Footers() []Moment {
	switch b.Kind {
	case Instant:
		if b.At == 0 {
			return []Moment{{Prefix: "before first game"}}
		}
		return []Moment{{Prefix: "at", Date: b.At}}
	case Duration:
		var out []Moment
		if b.From != 0 {
			out = append(out, Moment{Prefix: "From", Date: b.From})
		}
		if b.To != 0 {
			out = append(out, Moment{Prefix: "to", Date: b.To})
		}
		return out
	}
	return nil
}

func (b Box) ClassList() string {
	return strings.Join(b.Classes, " ")
}

// Moment is a footer line, optionally pointing at a game.
type Moment struct {
	Prefix string
	Date   int64
}

func (m Moment) Time() string {
	if m.Date == 0 {
		return ""
	}
	return time.Unix(m.Date, 0).UTC().Format(timeLayout)
}

func (m Moment) String() string {
	if m.Date == 0 {
		return m.Prefix
	}
	return m.Prefix + " " + m.Time()
}

type Row []Box

type Page struct {
	Title string
	// Base prefixes every player and game link.
	Base string
	Rows []Row
}

func (p Page) GameHref(date int64) string {
	return GameHref(p.Base, date)
}

func PlayerHref(base, name string) string {
	return base + "player/" + url.PathEscape(name)
}

func GameHref(base string, date int64) string {
	return base + "game/" + strconv.FormatInt(date, 10)
}

func fade(blue bool) Style {
	if blue {
		return Style{Background: BlueFade}
	}
	return Style{Background: RedFade}
}

// sideColour mixes red and blue in proportion to redness.
func sideColour(redness float64) Style {
	if math.IsNaN(redness) || math.IsInf(redness, 0) {
		return Style{}
	}
	r := int(math.Round(redness * 255))
	b := int(math.Round((1 - redness) * 255))
	return Style{Background: fmt.Sprintf("#%02x00%02x", r, b), Foreground: White}
}

func nonEmpty(classes ...string) []string {
	var out []string
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

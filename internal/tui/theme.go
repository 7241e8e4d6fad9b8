package tui

import (
	"os"
	"strconv"
	"strings"

	"dragsort/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The list must stay readable on light and dark terminals, so every color is
// an AdaptiveColor and faint styling only applies on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorAccent     = ac("27", "62")
	colorCardBorder = ac("250", "243")
	colorSurfaceFg  = ac("235", "252")
	colorErrorFg    = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile.
//
// termenv.EnvColorProfile honors CLICOLOR, which can disable colors in an
// interactive program; only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color") && profile != termenv.TrueColor:
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) DRAGSORT_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("15;0" = fg;bg)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DRAGSORT_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rounded":
		return lipgloss.RoundedBorder(), true
	case "normal":
		return lipgloss.NormalBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

func adaptive(c *model.AdaptiveColor) lipgloss.AdaptiveColor {
	if c.Light == "" {
		return ac(c.Dark, c.Dark)
	}
	if c.Dark == "" {
		return ac(c.Light, c.Light)
	}
	return ac(c.Light, c.Dark)
}

// frameStyle builds the geometry-affecting part of a style: border and
// padding. defaultBorder is used when st does not name one.
func frameStyle(st *model.Style, defaultBorder string, defaultPadding int) lipgloss.Style {
	out := lipgloss.NewStyle()
	name := defaultBorder
	pad := defaultPadding
	if st != nil {
		if st.Border != "" {
			name = st.Border
		}
		if st.Padding != nil {
			pad = *st.Padding
		}
	}
	if b, ok := borderByName(name); ok {
		out = out.Border(b).BorderForeground(colorCardBorder)
	}
	return out.Padding(0, pad)
}

// paint applies the color part of st on top of base. It never changes
// geometry, so an element keeps its height whatever role it is drawn in.
func paint(base lipgloss.Style, st *model.Style) lipgloss.Style {
	if st == nil {
		return base
	}
	if !st.Foreground.IsZero() {
		base = base.Foreground(adaptive(st.Foreground))
	}
	if !st.Background.IsZero() {
		base = base.Background(adaptive(st.Background))
	}
	if !st.BorderForeground.IsZero() {
		base = base.BorderForeground(adaptive(st.BorderForeground))
	}
	if st.Bold {
		base = base.Bold(true)
	}
	if st.Faint {
		base = faintIfDark(base)
	}
	return base
}

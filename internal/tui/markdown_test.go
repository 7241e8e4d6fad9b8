package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("DRAGSORT_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("DRAGSORT_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestCompactStyleConfig_NoMarginsSurfaceColors(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		cfg := compactStyleConfig(name)
		if cfg.Document.Margin == nil || *cfg.Document.Margin != 0 {
			t.Fatalf("%s: expected zero document margin", name)
		}
		if cfg.Paragraph.Margin == nil || *cfg.Paragraph.Margin != 0 {
			t.Fatalf("%s: expected zero paragraph margin", name)
		}
		want := colorSurfaceFg.Dark
		if name == "light" {
			want = colorSurfaceFg.Light
		}
		if cfg.Text.Color == nil || *cfg.Text.Color != want {
			t.Fatalf("%s: want text color %q", name, want)
		}
		if cfg.Link.Color == nil || *cfg.Link.Color != *cfg.LinkText.Color {
			t.Fatalf("%s: expected link and link text to share a color", name)
		}
	}
}

func TestRenderBody_EmptyAndWrapped(t *testing.T) {
	t.Setenv("DRAGSORT_TUI_THEME", "dark")

	if got := renderBody("  \n ", 40); got != "" {
		t.Fatalf("expected empty body; got %q", got)
	}

	got := renderBody("one two three four five six seven eight nine ten eleven twelve", 20)
	if got == "" || strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trimmed output; got %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping at width 20; got %q", got)
	}
	for _, line := range lines {
		if w := xansi.StringWidth(strings.TrimRight(xansi.Strip(line), " ")); w > 20 {
			t.Fatalf("line wider than 20: %q", line)
		}
	}
	if !strings.Contains(xansi.Strip(got), "twelve") {
		t.Fatalf("expected body text in output; got %q", got)
	}
}

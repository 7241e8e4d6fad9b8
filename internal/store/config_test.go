package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dragsort/internal/model"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestResolve_Defaults(t *testing.T) {
	s, err := DefaultConfig().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Mount != DefaultMount || !s.Animation || s.Duration != DefaultDuration || s.Gap != DefaultGap || s.FPS != DefaultFPS {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if len(s.Items) != 5 {
		t.Fatalf("want 5 demo items; got %d", len(s.Items))
	}
	if s.OriginStyle.BorderForeground.IsZero() || !s.TargetStyle.Bold {
		t.Fatalf("expected default origin/target styles; got %+v / %+v", s.OriginStyle, s.TargetStyle)
	}
}

func TestResolve_Overrides(t *testing.T) {
	cfg := &Config{
		Mount:     "work",
		Lists:     map[string][]model.Item{"work": {{Title: " A "}, {Title: "B", ID: "b"}}},
		Animation: boolPtr(false),
		Duration:  "1s",
		Gap:       intPtr(0),
		FPS:       30,
		TargetStyle: &model.Style{
			Foreground: &model.AdaptiveColor{Dark: "#ff0000"},
		},
	}
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Animation || s.Duration != time.Second || s.Gap != 0 || s.FPS != 30 {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if s.Items[0].ID != "item-1" || s.Items[0].Title != "A" || s.Items[1].ID != "b" {
		t.Fatalf("unexpected items: %+v", s.Items)
	}
	if s.TargetStyle.Bold || s.TargetStyle.Foreground.Dark != "#ff0000" {
		t.Fatalf("expected target style to replace the default; got %+v", s.TargetStyle)
	}
}

func TestResolve_MountNotFound(t *testing.T) {
	cfg := &Config{Mount: "nope", Lists: map[string][]model.Item{"a": {{Title: "x"}}, "b": {{Title: "y"}}}}
	_, err := cfg.Resolve()
	if !errors.Is(err, ErrMountNotFound) {
		t.Fatalf("want ErrMountNotFound; got %v", err)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Fatalf("expected known lists in the error; got %v", err)
	}
}

func TestResolve_Invalid(t *testing.T) {
	list := map[string][]model.Item{DefaultMount: {{Title: "x"}}}
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"empty list", Config{Lists: map[string][]model.Item{DefaultMount: {}}}, "no items"},
		{"duplicate ids", Config{Lists: map[string][]model.Item{DefaultMount: {{ID: "a", Title: "x"}, {ID: "a", Title: "y"}}}}, "duplicate"},
		{"blank item", Config{Lists: map[string][]model.Item{DefaultMount: {{Title: "  "}}}}, "neither title nor body"},
		{"bad duration", Config{Lists: list, Duration: "soon"}, "invalid duration"},
		{"negative duration", Config{Lists: list, Duration: "-1s"}, "must not be negative"},
		{"negative gap", Config{Lists: list, Gap: intPtr(-1)}, "invalid gap"},
		{"fps", Config{Lists: list, FPS: 1000}, "invalid fps"},
		{"border", Config{Lists: list, ContainerStyle: &model.Style{Border: "wavy"}}, "unknown border"},
		{"item padding", Config{Lists: map[string][]model.Item{DefaultMount: {{Title: "x", Style: &model.Style{Padding: intPtr(20)}}}}}, "invalid padding"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Resolve()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q; got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfig_MissingDefaultFallsBack(t *testing.T) {
	t.Setenv("DRAGSORT_CONFIG_DIR", t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, ok := cfg.Lists[DefaultMount]; !ok {
		t.Fatalf("expected the default config")
	}
}

func TestLoadConfig_MissingExplicitPathFails(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for a missing explicit config")
	}
}

func TestLoadConfig_ParseError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(p, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(p); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error; got %v", err)
	}
}

func TestSaveConfig_RoundTripAndNoClobber(t *testing.T) {
	t.Setenv("DRAGSORT_CONFIG_DIR", filepath.Join(t.TempDir(), "nested"))

	path, err := SaveConfig("", DefaultConfig(), false)
	if err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	want, _ := ConfigPath()
	if path != want {
		t.Fatalf("want %s; got %s", want, path)
	}
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := len(cfg.Lists[DefaultMount]); got != 5 {
		t.Fatalf("want 5 items after reload; got %d", got)
	}

	if _, err := SaveConfig("", DefaultConfig(), false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := SaveConfig("", &Config{Mount: "x"}, true); err != nil {
		t.Fatalf("SaveConfig overwrite: %v", err)
	}
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Mount != "x" {
		t.Fatalf("expected overwritten config; got mount %q", cfg.Mount)
	}
}

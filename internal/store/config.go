package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"dragsort/internal/model"
)

const (
	DefaultMount    = "default"
	DefaultDuration = 250 * time.Millisecond
	DefaultGap      = 1
	DefaultFPS      = 60
)

var (
	// ErrMountNotFound means the configured mount names no list.
	ErrMountNotFound = errors.New("mount target not found")
	ErrEmptyList     = errors.New("list has no items")
)

// Config is the on-disk configuration. Optional fields are pointers or zero
// values; Resolve fills in defaults.
type Config struct {
	// Mount selects the list in Lists to render.
	Mount string                  `json:"mount,omitempty"`
	Lists map[string][]model.Item `json:"lists,omitempty"`

	Animation *bool `json:"animation,omitempty"`
	// Duration is a Go duration string ("250ms").
	Duration string `json:"duration,omitempty"`
	// Gap is the number of blank rows between items.
	Gap *int `json:"gap,omitempty"`
	FPS int  `json:"fps,omitempty"`

	ContainerStyle *model.Style `json:"containerStyle,omitempty"`
	OriginStyle    *model.Style `json:"originStyle,omitempty"`
	TargetStyle    *model.Style `json:"targetStyle,omitempty"`
}

// Settings is a validated Config with every default applied.
type Settings struct {
	Mount     string        `json:"mount"`
	Items     []model.Item  `json:"items"`
	Animation bool          `json:"animation"`
	Duration  time.Duration `json:"duration"`
	Gap       int           `json:"gap"`
	FPS       int           `json:"fps"`

	ContainerStyle model.Style `json:"containerStyle"`
	OriginStyle    model.Style `json:"originStyle"`
	TargetStyle    model.Style `json:"targetStyle"`
}

// Resolve validates the config and applies defaults.
func (c *Config) Resolve() (Settings, error) {
	mount := strings.TrimSpace(c.Mount)
	if mount == "" {
		mount = DefaultMount
	}
	items, ok := c.Lists[mount]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q (known: %s)", ErrMountNotFound, mount, strings.Join(c.ListNames(), ", "))
	}
	if len(items) == 0 {
		return Settings{}, fmt.Errorf("%w: %q", ErrEmptyList, mount)
	}
	items, err := normalizeItems(items)
	if err != nil {
		return Settings{}, fmt.Errorf("list %q: %w", mount, err)
	}

	s := Settings{
		Mount:     mount,
		Items:     items,
		Animation: true,
		Duration:  DefaultDuration,
		Gap:       DefaultGap,
		FPS:       DefaultFPS,
	}
	if c.Animation != nil {
		s.Animation = *c.Animation
	}
	if v := strings.TrimSpace(c.Duration); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid duration %q: %w", v, err)
		}
		if d < 0 {
			return Settings{}, fmt.Errorf("invalid duration %q: must not be negative", v)
		}
		s.Duration = d
	}
	if c.Gap != nil {
		if *c.Gap < 0 {
			return Settings{}, fmt.Errorf("invalid gap %d: must not be negative", *c.Gap)
		}
		s.Gap = *c.Gap
	}
	if c.FPS < 0 || c.FPS > 240 {
		return Settings{}, fmt.Errorf("invalid fps %d: must be between 1 and 240 (0 for the default)", c.FPS)
	}
	if c.FPS > 0 {
		s.FPS = c.FPS
	}
	for name, st := range map[string]*model.Style{
		"containerStyle": c.ContainerStyle,
		"originStyle":    c.OriginStyle,
		"targetStyle":    c.TargetStyle,
	} {
		if err := validateStyle(st); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.ContainerStyle != nil {
		s.ContainerStyle = *c.ContainerStyle
	}
	s.OriginStyle = defaultOriginStyle()
	if c.OriginStyle != nil {
		s.OriginStyle = *c.OriginStyle
	}
	s.TargetStyle = defaultTargetStyle()
	if c.TargetStyle != nil {
		s.TargetStyle = *c.TargetStyle
	}
	return s, nil
}

// ListNames returns the configured list names, sorted.
func (c *Config) ListNames() []string {
	out := make([]string, 0, len(c.Lists))
	for name := range c.Lists {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalizeItems(in []model.Item) ([]model.Item, error) {
	out := make([]model.Item, 0, len(in))
	seen := map[string]bool{}
	for i, it := range in {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = fmt.Sprintf("item-%d", i+1)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		it.Title = strings.TrimSpace(it.Title)
		if it.Title == "" && strings.TrimSpace(it.Body) == "" {
			return nil, fmt.Errorf("item %q has neither title nor body", it.ID)
		}
		if err := validateStyle(it.Style); err != nil {
			return nil, fmt.Errorf("item %q: %w", it.ID, err)
		}
		out = append(out, it)
	}
	return out, nil
}

var borderNames = map[string]bool{
	"": true, "rounded": true, "normal": true, "thick": true, "double": true, "hidden": true, "none": true,
}

func validateStyle(st *model.Style) error {
	if st == nil {
		return nil
	}
	if !borderNames[strings.ToLower(strings.TrimSpace(st.Border))] {
		return fmt.Errorf("unknown border %q", st.Border)
	}
	if st.Padding != nil && (*st.Padding < 0 || *st.Padding > 8) {
		return fmt.Errorf("invalid padding %d: must be between 0 and 8", *st.Padding)
	}
	return nil
}

func defaultOriginStyle() model.Style {
	return model.Style{
		BorderForeground: &model.AdaptiveColor{Light: "27", Dark: "62"},
		Faint:            true,
	}
}

func defaultTargetStyle() model.Style {
	return model.Style{
		BorderForeground: &model.AdaptiveColor{Light: "232", Dark: "255"},
		Bold:             true,
	}
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Mount: DefaultMount,
		Lists: map[string][]model.Item{
			DefaultMount: {
				{ID: "item-1", Title: "Write the proposal", Body: "Draft, then *cut it in half*."},
				{ID: "item-2", Title: "Review open pull requests"},
				{ID: "item-3", Title: "Reply to support tickets", Body: "- billing\n- login issues"},
				{ID: "item-4", Title: "Plan the sprint"},
				{ID: "item-5", Title: "Update the changelog", Body: "Mention the new `--print` flag."},
			},
		},
	}
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.dragsort).
	if v := strings.TrimSpace(os.Getenv("DRAGSORT_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dragsort"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config at path, or at ConfigPath when path is empty.
// A missing default config yields DefaultConfig; a missing explicit path is
// an error.
func LoadConfig(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// SaveConfig writes cfg to path (ConfigPath when empty). Existing files are
// left alone unless overwrite is set.
func SaveConfig(path string, cfg *Config, overwrite bool) (string, error) {
	if strings.TrimSpace(path) == "" {
		p, err := ConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists", path)
		}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return path, err
	}
	return path, atomicWriteFile(dir, "config.json.*.tmp", path, append(b, '\n'), 0o644)
}

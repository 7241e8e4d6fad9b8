package cli

import (
	"fmt"
	"os"
	"strings"

	"dragsort/internal/format"
	"dragsort/internal/model"
	"dragsort/internal/store"
	"dragsort/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath  string
	Mount       string
	NoAnimation bool
	Gap         int
	Duration    string
	Print       bool
	PrettyJSON  bool
	Format      string
}

// runTUI is swapped out in tests.
var runTUI func(store.Settings) (model.Order, error) = tui.Run

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "dragsort",
		Short:        "Reorder a list by dragging items with the mouse",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Reorder the default list
  dragsort

  # Reorder another list and print the result as EDN
  dragsort --mount backlog --print --format edn

  # Write a starter config to ~/.dragsort/config.json
  dragsort config init
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Print {
				if err := checkFormat(app.Format); err != nil {
					return err
				}
			}
			settings, err := resolveSettings(cmd, app)
			if err != nil {
				return err
			}
			order, err := runTUI(settings)
			if err != nil {
				return err
			}
			if !app.Print {
				return nil
			}
			return writeOut(cmd, app, order)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DRAGSORT_CONFIG", ""), "Path to config file (default: ~/.dragsort/config.json)")
	cmd.PersistentFlags().StringVar(&app.Mount, "mount", envOr("DRAGSORT_MOUNT", ""), "Name of the list to show (default: config mount, then 'default')")
	cmd.PersistentFlags().BoolVar(&app.NoAnimation, "no-animation", false, "Reorder without the slide transition")
	cmd.PersistentFlags().IntVar(&app.Gap, "gap", store.DefaultGap, "Blank rows between items")
	cmd.PersistentFlags().StringVar(&app.Duration, "duration", "", "Transition duration, e.g. 250ms")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DRAGSORT_FORMAT", "json"), "Output format (json|edn)")
	cmd.Flags().BoolVar(&app.Print, "print", false, "Print the final order on exit")

	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// resolveSettings loads the config and applies flag overrides. Only flags
// the user set win over the file.
func resolveSettings(cmd *cobra.Command, app *App) (store.Settings, error) {
	cfg, err := store.LoadConfig(app.ConfigPath)
	if err != nil {
		return store.Settings{}, err
	}
	if v := strings.TrimSpace(app.Mount); v != "" {
		cfg.Mount = v
	}
	if app.NoAnimation {
		off := false
		cfg.Animation = &off
	}
	if cmd.Flags().Changed("gap") {
		gap := app.Gap
		cfg.Gap = &gap
	}
	if v := strings.TrimSpace(app.Duration); v != "" {
		cfg.Duration = v
	}
	return cfg.Resolve()
}

func checkFormat(f string) error {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", "json", "edn":
		return nil
	default:
		return fmt.Errorf("unknown format: %s (want json or edn)", f)
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

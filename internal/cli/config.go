package cli

import (
	"dragsort/internal/store"

	"github.com/spf13/cobra"
)

// settingsView is store.Settings with a readable duration.
type settingsView struct {
	store.Settings
	Duration string `json:"duration"`
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings (config file plus flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, settingsView{Settings: s, Duration: s.Duration.String()})
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config with a demo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.SaveConfig(app.ConfigPath, store.DefaultConfig(), force)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"path": path, "mount": store.DefaultMount})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

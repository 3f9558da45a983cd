package main

import (
	"github.com/Veraticus/studmoney/internal/tui"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive budget dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, cfg, err := initTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			opts := []tui.Option{tui.WithTheme(themes.GetTheme(cfg.Theme))}
			if refresh, _ := cmd.Flags().GetDuration("refresh"); cmd.Flags().Changed("refresh") {
				opts = append(opts, tui.WithRefreshInterval(refresh))
			}

			return tui.Run(cmd.Context(), tracker, opts...)
		},
	}

	cmd.Flags().Duration("refresh", tui.DefaultRefreshInterval, "how often to recompute the summary (0 disables)")

	return cmd
}

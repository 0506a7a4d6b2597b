package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(g *globalFlags) *cobra.Command {
	src := &sourceFlags{}
	var color bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one row per thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if err := src.apply(cmd, cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = color
			}

			start, err := src.start(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			r := newReporter(cfg)
			if err := r.List(cmd.OutOrStdout(), start); err != nil {
				return err
			}

			if g.verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(r.Summarize(start).String()))
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&color, "color", false, "color the ALIVE column")

	return cmd
}

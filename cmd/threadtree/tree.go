package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd(g *globalFlags) *cobra.Command {
	src := &sourceFlags{}
	out := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the thread group tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if err := src.apply(cmd, cfg); err != nil {
				return err
			}
			if err := out.apply(cmd, cfg); err != nil {
				return err
			}

			start, err := src.start(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			r := newReporter(cfg)
			if err := r.Render(cmd.OutOrStdout(), start); err != nil {
				return err
			}

			if g.verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(r.Summarize(start).String()))
			}
			return nil
		},
	}

	src.register(cmd)
	out.register(cmd)

	return cmd
}

package main

import (
	"errors"
	"fmt"

	"threadtree/snapshot"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(g *globalFlags) *cobra.Command {
	src := &sourceFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture the thread group tree to a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if err := src.apply(cmd, cfg); err != nil {
				return err
			}

			start, err := src.start(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if start == nil {
				return errors.New("no thread group to capture")
			}

			root := snapshot.Capture(start, cfg.MaxDepth)
			if err := snapshot.Save(output, root); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Wrote snapshot to "+output))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

package main

import (
	"context"
	"fmt"

	"threadtree/config"
	"threadtree/report"
	"threadtree/snapshot"
	"threadtree/threads"

	"github.com/spf13/cobra"
)

// sourceFlags select where the tree comes from and which part is shown
type sourceFlags struct {
	file    string
	current string
	pid     int
	name    string
	self    bool
	depth   int
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.file, "file", "f", "", "read the tree from a snapshot file instead of /proc")
	f.StringVarP(&s.current, "current", "c", "", "group path inside the snapshot to treat as the current group")
	f.IntVar(&s.pid, "pid", 0, "treat this process as the current group")
	f.StringVar(&s.name, "name", "", "treat the lowest-PID process with this name as the current group")
	f.BoolVar(&s.self, "self", false, "start from the current group instead of the root")
	f.IntVarP(&s.depth, "depth", "d", 0, "omit groups nested deeper than this (0 = no limit)")
	cmd.MarkFlagsMutuallyExclusive("file", "pid")
	cmd.MarkFlagsMutuallyExclusive("file", "name")
	cmd.MarkFlagsMutuallyExclusive("pid", "name")
}

// apply copies explicitly set flags over the loaded configuration
func (s *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("file") {
		cfg.Snapshot = s.file
	}
	if f.Changed("current") {
		cfg.Current = s.current
	}
	if f.Changed("depth") {
		cfg.MaxDepth = s.depth
	}
	if (s.pid != 0 || s.name != "") && cfg.Snapshot != "" {
		return fmt.Errorf("--pid and --name select live processes and cannot be used with a snapshot")
	}
	return config.Validate(*cfg)
}

// start resolves the group the command starts from
func (s *sourceFlags) start(ctx context.Context, cfg *config.Config) (threads.ThreadGroup, error) {
	var (
		ins threads.GroupInspector
		err error
	)
	if cfg.Snapshot != "" {
		ins, err = snapshotInspector(cfg.Snapshot, cfg.Current)
	} else {
		ins, err = liveInspector(ctx, s.pid, s.name)
	}
	if err != nil {
		return nil, err
	}

	if s.self {
		return ins.CurrentGroup(), nil
	}
	return threads.LocateRoot(ins), nil
}

func snapshotInspector(path, current string) (threads.GroupInspector, error) {
	root, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}
	return snapshot.NewInspector(root, current)
}

// reportFlags tune the text output
type reportFlags struct {
	ids    bool
	color  bool
	indent string
}

func (r *reportFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&r.ids, "ids", false, "show PIDs and TIDs next to names")
	f.BoolVar(&r.color, "color", false, "color names and markers")
	f.StringVar(&r.indent, "indent", "", "indent unit (default four spaces)")
}

func (r *reportFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("ids") {
		cfg.ShowIDs = r.ids
	}
	if f.Changed("color") {
		cfg.Color = r.color
	}
	if f.Changed("indent") {
		cfg.Indent = r.indent
	}
	return config.Validate(*cfg)
}

func newReporter(cfg *config.Config) *report.Reporter {
	return report.New(
		report.WithIndent(cfg.Indent),
		report.WithMaxDepth(cfg.MaxDepth),
		report.WithIDs(cfg.ShowIDs),
		report.WithColor(cfg.Color),
	)
}

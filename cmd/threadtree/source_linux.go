//go:build linux

package main

import (
	"context"

	"threadtree/threads"
	"threadtree/threads_linux"
)

func liveInspector(ctx context.Context, pid int, name string) (threads.GroupInspector, error) {
	var opts []threads_linux.Option
	if pid != 0 {
		opts = append(opts, threads_linux.WithCurrentPID(pid))
	}
	if name != "" {
		opts = append(opts, threads_linux.WithCurrentName(name))
	}
	return threads_linux.NewInspector(ctx, opts...)
}

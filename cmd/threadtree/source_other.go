//go:build !linux

package main

import (
	"context"
	"errors"

	"threadtree/threads"
)

func liveInspector(ctx context.Context, pid int, name string) (threads.GroupInspector, error) {
	return nil, errors.New("live inspection needs Linux procfs, use --file with a snapshot")
}

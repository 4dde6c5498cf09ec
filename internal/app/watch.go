package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/corey/jlint/internal/domain/lint"
	"github.com/corey/jlint/internal/ports"
)

// settleDelay lets a burst of editor writes finish before re-checking.
const settleDelay = 200 * time.Millisecond

// WatchLoop re-runs the rule set over root whenever a supported source file
// changes, passing each completed run to onRun. It returns when ctx is
// cancelled. Change bursts coalesce into a single re-check.
func (r *Runner) WatchLoop(ctx context.Context, root string, watcher ports.Watcher, onRun func(*lint.Run)) error {
	rerun := make(chan struct{}, 1)
	err := watcher.Watch(root, func(path string) {
		if !r.Parser.SupportsExtension(filepath.Ext(path)) {
			return
		}
		select {
		case rerun <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rerun:
			time.Sleep(settleDelay)
			// Drain anything that arrived while settling.
			select {
			case <-rerun:
			default:
			}
			run, err := r.Run([]string{root})
			if err != nil {
				r.Log.Error("re-check failed", "err", err)
				continue
			}
			onRun(run)
		}
	}
}

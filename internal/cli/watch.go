package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagerank/pkg/pipeline"
)

const watchDebounce = 150 * time.Millisecond

// fileWatcher reports changes to a single file. It watches the parent
// directory, since editors often save by renaming a temp file over the
// original, and coalesces bursts of events into one notification.
type fileWatcher struct {
	path     string
	debounce time.Duration
	Changes  <-chan struct{}

	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

func newFileWatcher(path string, debounce time.Duration) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	w := &fileWatcher{
		path:     abs,
		debounce: debounce,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}
	go w.loop()
	return w, nil
}

// Stop closes the watcher and waits for its loop to exit.
func (w *fileWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func (w *fileWatcher) loop() {
	defer close(w.done)

	var pending bool
	var last time.Time
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = true
				last = time.Now()
			}

		case <-ticker.C:
			if pending && time.Since(last) >= w.debounce {
				pending = false
				select {
				case w.changes <- struct{}{}:
				default: // a notification is already queued
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-rank a graph file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args[0], top)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the n highest ranked nodes")
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, path string, top int) error {
	opts, err := c.cfg.pipelineOptions()
	if err != nil {
		return err
	}
	opts.Source = path

	// Every save changes the graph hash, so rankings are not cached.
	runner := pipeline.NewRunner(nil, nil, c.Logger)

	w, err := newFileWatcher(path, watchDebounce)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Stop()

	logger := loggerFromContext(ctx)
	rank := func() {
		prog := newProgress(logger)
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			// Keep watching: the next save may fix the file.
			printError("%v", err)
			return
		}
		prog.ranked(result)
		printStats(result, false)
		fmt.Println(scoreTable(result.Ranking, top))
		printConvergence(result.Ranking)
	}

	rank()
	printInfo("Watching %s (ctrl+c to stop)", path)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch stopped", "path", path)
			return nil
		case <-w.Changes:
			logger.Debug("file changed", "path", path)
			printNewline()
			printInfo("%s changed at %s", filepath.Base(path), time.Now().Format("15:04:05"))
			rank()
		}
	}
}

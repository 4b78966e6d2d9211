package wordlist

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// changeOps are the events that can leave a list file with new contents.
// Editors often save by renaming a temporary file over the original.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watch calls onChange with the file path whenever a configured list file
// changes, until ctx is done. It returns at once when only built-in lists
// are in use.
func (l *Loader) Watch(ctx context.Context, onChange func(path string)) error {
	w, err := l.newWatcher()
	if err != nil || w == nil {
		return err
	}
	return w.run(ctx, onChange)
}

// watcher follows the directories holding the list files, so a file that
// is replaced rather than rewritten is still seen.
type watcher struct {
	fs    *fsnotify.Watcher
	files map[string]struct{}
}

func (l *Loader) newWatcher() (*watcher, error) {
	files := make(map[string]struct{})
	for _, p := range []string{l.answersPath, l.guessesPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		files[abs] = struct{}{}
	}
	if len(files) == 0 {
		return nil, nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for f := range files {
		if err := fs.Add(filepath.Dir(f)); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("watch %s: %w", filepath.Dir(f), err)
		}
	}
	return &watcher{fs: fs, files: files}, nil
}

func (w *watcher) run(ctx context.Context, onChange func(path string)) error {
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&changeOps == 0 {
				continue
			}
			if _, watched := w.files[filepath.Clean(ev.Name)]; !watched {
				continue
			}
			logger.Debug("word list %s changed (%s)", ev.Name, ev.Op)
			onChange(ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("word list watcher: %v", err)
		}
	}
}

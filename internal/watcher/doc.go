// Package watcher notices when the edited file changes underneath the editor.
//
// # Overview
//
// FileWatcher collects change notifications and reports them once things
// settle, so a burst of writes from another tool (a formatter, git checkout)
// arrives as a single callback.
//
// Notifications come from two places:
//   - Watch follows a file through fsnotify events on its directory
//   - FileChanged / FilesChanged let other code report changes directly
//
// Explicitly watched paths are always reported. Other paths go through the
// ignore filters (build output, hidden files, editor swap files).
//
// # Usage
//
//	w := watcher.NewWatcherWithConfig(watcher.Config{
//	    DebounceDelay: 300 * time.Millisecond,
//	}, func(paths []string) {
//	    broker.Publish(events.Event{Type: events.FileChangedOnDisk, ...})
//	})
//	defer w.Stop()
//	w.Watch("main.go")
package watcher

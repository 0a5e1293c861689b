package sweep

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch keeps the target swept until ctx is cancelled. Files that appear
// under the watched tree trigger another pass, and new directories join the
// watch as they show up.
func Watch(ctx context.Context, req Request) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addTree(watcher, req); err != nil {
		return err
	}

	// Initial pass so files that predate the watch are swept too.
	runPass(req)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
				if !within(event.Name, req.Dest()) && !req.Policy.Blocked(filepath.Base(event.Name)) {
					if err := watcher.Add(event.Name); err != nil {
						log.WithError(err).WithField("dir", event.Name).Warn("failed to watch new directory")
					}
				}
			}
			runPass(req)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(werr).Error("watcher error")
		}
	}
}

func runPass(req Request) {
	_, moves, err := Run(req)
	if err != nil {
		log.WithError(err).Error("sweep pass failed")
		return
	}
	if len(moves) > 0 {
		log.WithFields(log.Fields{"moved": len(moves), "dest": req.Dest()}).Info("sweep pass complete")
	}
}

func addTree(watcher *fsnotify.Watcher, req Request) error {
	dest := req.Dest()
	return filepath.WalkDir(req.Target, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if within(path, dest) {
			return filepath.SkipDir
		}
		if path != req.Target && req.Policy.Blocked(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

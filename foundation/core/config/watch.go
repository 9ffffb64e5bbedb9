// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk and
//              notifies the registered change handlers. The parent directory
//              is watched so editors that replace the file are handled.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Polling based watcher
// - 2026-10-18 v0.2.0: fsnotify based watcher with synchronous handlers

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
	"github.com/msto63/sptext/foundation/core/log"
	"github.com/msto63/sptext/foundation/utils/stringx"
)

type fileWatch struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// OnChange registers a handler that runs after every successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	c.watchers = append(c.watchers, handler)
}

// StartWatching begins monitoring the configuration file. Calling it on a
// config that is already watched is a no-op.
func (c *Config) StartWatching() error {
	if stringx.IsBlank(c.filePath) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.StartWatching")
	}

	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	if c.watch != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.StartWatching")
	}
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		_ = watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.StartWatching").
			WithDetail("filePath", c.filePath)
	}

	c.watch = &fileWatch{watcher: watcher, done: make(chan struct{})}
	go c.watchLoop(c.watch)
	return nil
}

// StopWatching stops file monitoring and waits for the watch loop to exit
func (c *Config) StopWatching() {
	c.watchMu.Lock()
	w := c.watch
	c.watch = nil
	c.watchMu.Unlock()

	if w == nil {
		return
	}
	_ = w.watcher.Close()
	<-w.done
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	return c.watch != nil
}

func (c *Config) watchLoop(w *fileWatch) {
	defer close(w.done)

	target := filepath.Clean(c.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				log.GetDefault().LogError(err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.GetDefault().ErrorWithErr("config watcher error", err, log.Fields{"filePath": c.filePath})
		}
	}
}

// reload re-reads the file and notifies handlers with snapshots of the old
// and the new configuration
func (c *Config) reload() error {
	newData, err := readFile(c.filePath, c.format)
	if err != nil {
		return err
	}
	if c.defaults != nil {
		newData = mergeDefaults(newData, c.defaults)
	}

	c.mu.Lock()
	oldConfig := &Config{data: deepCopyMap(c.data), format: c.format, filePath: c.filePath, envPrefix: c.envPrefix}
	c.data = newData
	newConfig := &Config{data: deepCopyMap(newData), format: c.format, filePath: c.filePath, envPrefix: c.envPrefix}
	c.mu.Unlock()

	c.watchMu.Lock()
	handlers := make([]ChangeHandler, len(c.watchers))
	copy(handlers, c.watchers)
	c.watchMu.Unlock()

	for _, handler := range handlers {
		handler(oldConfig, newConfig)
	}
	return nil
}

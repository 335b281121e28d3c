// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"heavylift.dev/hlcolor/base/errors"
)

// watchDelay is how long events are collected before a change is handled,
// as editors often write a file in several steps.
const watchDelay = 100 * time.Millisecond

// changeOps are the operations that change the contents at a path.
// Rename and Create cover editors that replace the file.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// fileWatcher watches one file through the directory that contains it,
// so that files replaced by a rename are still seen.
type fileWatcher struct {
	path    string
	delay   time.Duration
	watcher *fsnotify.Watcher
}

func newFileWatcher(path string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{path: path, delay: watchDelay, watcher: w}, nil
}

// run calls onChange after every change to the file until
// the context is done.
func (fw *fileWatcher) run(ctx context.Context, onChange func() error) error {
	return watchEvents(ctx, fw.path, fw.delay, fw.watcher.Events, fw.watcher.Errors, onChange)
}

func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}

// watchFile calls onChange after every change to the given file until
// the context is done. Errors of onChange are logged and do not stop
// watching.
func watchFile(ctx context.Context, path string, onChange func() error) error {
	fw, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer fw.Close()
	return fw.run(ctx, onChange)
}

// watchEvents handles the events of a directory watcher for the given
// clean path. Changes within delay of each other result in one call
// of onChange. It returns nil when the context is done or the event
// channels are closed.
func watchEvents(ctx context.Context, path string, delay time.Duration, events <-chan fsnotify.Event, errs <-chan error, onChange func() error) error {
	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(changeOps) {
				continue
			}
			slog.Debug("config changed", "op", event.Op.String())
			timer.Reset(delay)
		case <-timer.C:
			errors.Log(onChange())
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			slog.Error("config watcher error: " + err.Error())
		}
	}
}

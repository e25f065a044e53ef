package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// WatchConfig initializes a filesystem watcher for the specified files.
// It returns a channel that emits an empty struct when a change has
// been detected and debounced. The watcher runs in a goroutine until
// the context is canceled.
func WatchConfig(ctx context.Context, files ...string) <-chan struct{} {
	reloadCh := make(chan struct{}, 1) // buffer 1 so we never block the sender

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create fsnotify watcher")
		close(reloadCh)
		return reloadCh
	}

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			log.Warn().Str("file", file).Msg("Could not resolve absolute path for watch file")
			continue
		}
		if err := watcher.Add(absPath); err != nil {
			log.Warn().Str("file", file).Err(err).Msg("Could not watch file")
		} else {
			log.Debug().Str("file", file).Msg("Watching configuration file")
		}
	}

	go func() {
		defer watcher.Close()
		defer close(reloadCh)

		// The debounced send and the close both happen on this
		// goroutine, so a shutdown can never race a pending signal.
		debounce := 500 * time.Millisecond
		var timer *time.Timer
		var timerC <-chan time.Time
		var changed string

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Editors commonly replace files on save, so watch for
				// both writes and recreations.
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					changed = event.Name
					if timer == nil {
						timer = time.NewTimer(debounce)
						timerC = timer.C
					} else {
						timer.Reset(debounce)
					}
				}
			case <-timerC:
				log.Info().Str("file", changed).Msg("Configuration change detected")
				select {
				case reloadCh <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("Watcher encountered an error")
			}
		}
	}()

	return reloadCh
}

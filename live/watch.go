package live

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"time"
)

// WatchFile polls path and calls fn with the file contents whenever its
// modification time or size changes. The first call happens immediately
// when the file exists. It returns when ctx is done.
func WatchFile(ctx context.Context, path string, interval time.Duration, logger *log.Logger, fn func([]byte)) error {
	if logger == nil {
		logger = log.Default()
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	var lastMod time.Time
	lastSize := int64(-1)

	check := func() {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Printf("watch %s: %v", path, err)
			}
			return
		}
		if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Printf("watch %s: %v", path, err)
			return
		}
		lastMod, lastSize = info.ModTime(), info.Size()
		fn(data)
	}

	check()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			check()
		}
	}
}

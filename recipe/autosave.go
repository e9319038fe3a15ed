package recipe

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/olzn/glint-studio/effects"
)

type AutosaveConfig struct {
	Path     string
	Interval time.Duration
	Logger   *log.Logger
}

// Autosaver periodically writes the store's document to disk when it has
// changed since the last write. Failures are logged, never returned.
type Autosaver struct {
	store  *Store
	path   string
	logger *log.Logger

	mu   sync.Mutex
	last []byte

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func StartAutosave(store *Store, cfg AutosaveConfig) *Autosaver {
	if cfg.Interval <= 0 {
		cfg.Interval = AutosavePeriod
	}
	if cfg.Path == "" {
		cfg.Path = DefaultAutosavePath()
	}
	a := &Autosaver{
		store:  store,
		path:   cfg.Path,
		logger: cfg.Logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	go a.loop(cfg.Interval)
	return a
}

func DefaultAutosavePath() string {
	return filepath.Join(filepath.Dir(DefaultLibraryPath()), "autosave.json")
}

func (a *Autosaver) loop(interval time.Duration) {
	defer close(a.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.Save()
		case <-a.stop:
			return
		}
	}
}

// Save writes the current document if it differs from the last write.
func (a *Autosaver) Save() {
	data, err := json.MarshalIndent(a.store.Document(), "", "  ")
	if err != nil {
		a.logger.Printf("autosave: %v", err)
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if bytes.Equal(data, a.last) {
		return
	}
	if err := writeFileAtomic(a.path, append(data, '\n')); err != nil {
		a.logger.Printf("autosave: %v", err)
		return
	}
	a.last = data
}

// Close stops the timer and performs a final save.
func (a *Autosaver) Close() {
	a.once.Do(func() {
		close(a.stop)
		<-a.done
		a.Save()
	})
}

// LoadAutosave reads an autosaved document. A missing, unreadable or
// invalid file reports false.
func LoadAutosave(path string, reg *effects.Registry) (Document, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, false
	}
	doc, err := DecodeDocument(data, reg)
	if err != nil {
		log.Printf("autosave: ignoring %s: %v", path, err)
		return Document{}, false
	}
	return doc, true
}

package recipe

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/olzn/glint-studio/effects"
)

// SavedShader is one library entry.
type SavedShader struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	SavedAt  time.Time `json:"savedAt"`
	Document Document  `json:"document"`
}

type LibraryConfig struct {
	Path     string
	Registry *effects.Registry
	Logger   *log.Logger
	Now      func() time.Time
}

// Library is a JSON file of saved shaders. Entries that fail validation
// on read are skipped and logged.
type Library struct {
	mu     sync.Mutex
	path   string
	reg    *effects.Registry
	logger *log.Logger
	now    func() time.Time
}

func OpenLibrary(cfg LibraryConfig) *Library {
	l := &Library{path: cfg.Path, reg: cfg.Registry, logger: cfg.Logger, now: cfg.Now}
	if l.reg == nil {
		l.reg = effects.Default()
	}
	if l.logger == nil {
		l.logger = log.Default()
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l
}

// DefaultLibraryPath is the library file under the user config directory.
func DefaultLibraryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "glint-studio", "library.json")
}

// List returns the saved shaders in save order.
func (l *Library) List() ([]SavedShader, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Library) Get(id string) (SavedShader, error) {
	all, err := l.List()
	if err != nil {
		return SavedShader{}, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return SavedShader{}, fmt.Errorf("library %s: %w", id, ErrNotFound)
}

// Save appends doc to the library. Placeholder names are replaced by
// AutoName first.
func (l *Library) Save(doc Document) (SavedShader, error) {
	doc.Normalize()
	if err := doc.Validate(l.reg); err != nil {
		return SavedShader{}, err
	}
	if IsGenericName(doc.Name) {
		doc.Name = AutoName(doc.State, l.reg)
	}
	id, err := newID()
	if err != nil {
		return SavedShader{}, err
	}
	saved := SavedShader{ID: id, Name: doc.Name, SavedAt: l.now().UTC(), Document: NewDocument(doc.State)}

	l.mu.Lock()
	defer l.mu.Unlock()
	all, err := l.read()
	if err != nil {
		return SavedShader{}, err
	}
	if err := l.write(append(all, saved)); err != nil {
		return SavedShader{}, err
	}
	l.logger.Printf("library: saved %q as %s", saved.Name, saved.ID)
	return saved, nil
}

func (l *Library) Rename(id, name string) error {
	if msg := nameProblem(name); msg != "" {
		return fmt.Errorf("rename: %w: name %s", ErrInvalidValue, msg)
	}
	return l.modify(id, func(all []SavedShader, i int) []SavedShader {
		all[i].Name = name
		all[i].Document.Name = name
		return all
	})
}

func (l *Library) Delete(id string) error {
	return l.modify(id, func(all []SavedShader, i int) []SavedShader {
		return slices.Delete(all, i, i+1)
	})
}

func (l *Library) modify(id string, fn func([]SavedShader, int) []SavedShader) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	all, err := l.read()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(all, func(s SavedShader) bool { return s.ID == id })
	if i < 0 {
		return fmt.Errorf("library %s: %w", id, ErrNotFound)
	}
	return l.write(fn(all, i))
}

func (l *Library) read() ([]SavedShader, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse library %s: %w", l.path, err)
	}
	out := make([]SavedShader, 0, len(raw))
	for n, msg := range raw {
		var s SavedShader
		if err := json.Unmarshal(msg, &s); err != nil {
			l.logger.Printf("library: skipping entry %d: %v", n, err)
			continue
		}
		s.Document.Normalize()
		if err := s.Document.Validate(l.reg); err != nil {
			l.logger.Printf("library: skipping %s: %v", s.ID, err)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (l *Library) write(all []SavedShader) error {
	if all == nil {
		all = []SavedShader{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}
	return writeFileAtomic(l.path, append(data, '\n'))
}

// writeFileAtomic writes through a temporary sibling and renames it over
// path.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func newID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

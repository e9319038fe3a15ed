package recipe

import (
	"strconv"
	"strings"
	"sync"
)

const idPrefix = "fx"

// IDSource hands out instance ids fx1, fx2, ... Ids are never reused within
// one source.
type IDSource struct {
	mu   sync.Mutex
	next int
}

func NewIDSource() *IDSource { return &IDSource{next: 1} }

var processIDs = NewIDSource()

func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := idPrefix + strconv.Itoa(s.next)
	s.next++
	return id
}

// Reserve advances the counter past every id of the form fxN so that later
// calls to Next do not collide with loaded instances.
func (s *IDSource) Reserve(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
		if err != nil || !strings.HasPrefix(id, idPrefix) {
			continue
		}
		if n >= s.next {
			s.next = n + 1
		}
	}
}

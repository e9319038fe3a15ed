package live

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
	"github.com/olzn/glint-studio/translator"
)

//go:embed preview.html
var previewPage []byte

// Message is a server to browser message.
type Message struct {
	Type string `json:"type"` // compile, uniform, diagnostics

	Vertex   string `json:"vertex,omitempty"`
	Fragment string `json:"fragment,omitempty"`

	Name string    `json:"name,omitempty"`
	Data []float32 `json:"data,omitempty"`

	Diagnostics []translator.Diagnostic `json:"diagnostics,omitempty"`
}

// ClientMessage is a browser to server message. Which fields are set
// depends on Type.
type ClientMessage struct {
	Type   string         `json:"type"`
	Key    string         `json:"key,omitempty"`
	Value  *effects.Value `json:"value,omitempty"`
	Preset string         `json:"preset,omitempty"`
}

type HubConfig struct {
	Logger *log.Logger
	// Validate checks a shader pair before it is sent to browsers.
	// Defaults to translator.Validate.
	Validate func(vs, fs string) []translator.Diagnostic
	// OnMessage receives every well-formed client message.
	OnMessage func(ClientMessage)
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub is a Target that mirrors the shader into every connected browser.
// Late joiners receive the last valid program and every uniform.
type Hub struct {
	logger    *log.Logger
	validate  func(vs, fs string) []translator.Diagnostic
	onMessage func(ClientMessage)
	upgrader  websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	program     *Message
	uniforms    map[string]Message
	order       []string
	diagnostics []translator.Diagnostic
}

func NewHub(cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	validate := cfg.Validate
	if validate == nil {
		validate = translator.Validate
	}
	return &Hub{
		logger:    logger,
		validate:  validate,
		onMessage: cfg.OnMessage,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
		subscribers: make(map[*subscriber]struct{}),
		uniforms:    make(map[string]Message),
	}
}

// sameOrigin admits clients without an Origin header and pages served
// from the hub's own host. Client messages edit the recipe, so other
// sites must not be able to open the socket.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Compile validates the pair and, when valid, replaces the program shown
// in browsers. Invalid shaders leave the previous program running.
func (h *Hub) Compile(vs, fs string) []translator.Diagnostic {
	diags := h.validate(vs, fs)

	h.mu.Lock()
	h.diagnostics = diags
	var msg Message
	if len(diags) > 0 {
		msg = Message{Type: "diagnostics", Diagnostics: diags}
	} else {
		msg = Message{Type: "compile", Vertex: vs, Fragment: fs}
		h.program = &msg
		// uniforms of the old program are stale, the new ones follow
		clear(h.uniforms)
		h.order = h.order[:0]
	}
	subs := h.snapshotLocked()
	h.mu.Unlock()

	h.broadcast(subs, msg)
	return diags
}

// SetUniform records the value and forwards it to browsers.
func (h *Hub) SetUniform(name string, typ effects.ParamType, v effects.Value) {
	data, ok := shader.Components(typ, v)
	if !ok {
		h.logger.Printf("ignoring %s value %v for uniform %s", typ, v, name)
		return
	}
	msg := Message{Type: "uniform", Name: name, Data: data}

	h.mu.Lock()
	if _, seen := h.uniforms[name]; !seen {
		h.order = append(h.order, name)
	}
	h.uniforms[name] = msg
	subs := h.snapshotLocked()
	h.mu.Unlock()

	h.broadcast(subs, msg)
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) snapshotLocked() []*subscriber {
	subs := make([]*subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		subs = append(subs, s)
	}
	return subs
}

func (h *Hub) broadcast(subs []*subscriber, msg Message) {
	if len(subs) == 0 {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("failed to marshal %s message: %v", msg.Type, err)
		return
	}
	for _, s := range subs {
		if err := s.write(data); err != nil {
			h.logger.Printf("dropping preview client: %v", err)
			h.drop(s)
		}
	}
}

func (h *Hub) drop(s *subscriber) {
	h.mu.Lock()
	_, ok := h.subscribers[s]
	delete(h.subscribers, s)
	h.mu.Unlock()
	if ok {
		s.conn.Close()
	}
}

// Handler serves the preview page at / and the websocket at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.Handle)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(previewPage)
	})
	return mux
}

// Handle upgrades a preview connection, replays the current state and then
// reads client messages until the connection closes.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	sub := &subscriber{conn: conn}

	// registered and replayed under the hub lock so no broadcast can
	// slip in ahead of the replay
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	replayErr := h.replayLocked(sub)
	h.mu.Unlock()
	if replayErr != nil {
		h.logger.Printf("failed to send initial state to %s: %v", r.RemoteAddr, replayErr)
		h.drop(sub)
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			h.drop(sub)
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil || msg.Type == "" {
			h.logger.Printf("discarding malformed message from %s: %v", r.RemoteAddr, err)
			continue
		}
		if h.onMessage != nil {
			h.onMessage(msg)
		}
	}
}

func (h *Hub) replayLocked(sub *subscriber) error {
	var msgs []Message
	if h.program != nil {
		msgs = append(msgs, *h.program)
	}
	for _, name := range h.order {
		msgs = append(msgs, h.uniforms[name])
	}
	if len(h.diagnostics) > 0 {
		msgs = append(msgs, Message{Type: "diagnostics", Diagnostics: h.diagnostics})
	}
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		if err := sub.write(data); err != nil {
			return err
		}
	}
	return nil
}

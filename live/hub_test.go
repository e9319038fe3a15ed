package live

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/translator"
)

func newTestHub(t *testing.T, onMessage func(ClientMessage)) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(HubConfig{
		Logger: quietLogger(),
		Validate: func(vs, fs string) []translator.Diagnostic {
			if strings.Contains(fs, "broken") {
				return []translator.Diagnostic{{Line: 2, Message: "'broken' : undeclared identifier"}}
			}
			return nil
		},
		OnMessage: onMessage,
	})
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("bad message %s: %v", payload, err)
	}
	return msg
}

func TestHubReplaysStateToNewClients(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	if d := hub.Compile("vs", "void main() {}"); len(d) != 0 {
		t.Fatalf("diagnostics = %v", d)
	}
	hub.SetUniform("u_color0", effects.Color, effects.Text("#ff0000"))
	hub.SetUniform("u_fx1_scale", effects.Float, effects.Number(2))
	hub.SetUniform("u_color0", effects.Color, effects.Text("#0000ff"))

	conn := dial(t, srv)
	if m := readMessage(t, conn); m.Type != "compile" || m.Fragment != "void main() {}" || m.Vertex != "vs" {
		t.Fatalf("first message = %+v", m)
	}
	m := readMessage(t, conn)
	if m.Type != "uniform" || m.Name != "u_color0" || len(m.Data) != 3 || m.Data[2] != 1 {
		t.Errorf("second message = %+v", m)
	}
	if m := readMessage(t, conn); m.Name != "u_fx1_scale" || m.Data[0] != 2 {
		t.Errorf("third message = %+v", m)
	}

	hub.SetUniform("u_fx1_scale", effects.Float, effects.Number(3))
	if m := readMessage(t, conn); m.Type != "uniform" || m.Data[0] != 3 {
		t.Errorf("broadcast = %+v", m)
	}
	if hub.Clients() != 1 {
		t.Errorf("clients = %d", hub.Clients())
	}
}

func TestHubKeepsProgramOnDiagnostics(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	hub.Compile("vs", "good")
	conn := dial(t, srv)
	readMessage(t, conn)

	diags := hub.Compile("vs", "broken")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", diags)
	}
	m := readMessage(t, conn)
	if m.Type != "diagnostics" || len(m.Diagnostics) != 1 || m.Diagnostics[0].Line != 2 {
		t.Fatalf("message = %+v", m)
	}

	late := dial(t, srv)
	if m := readMessage(t, late); m.Type != "compile" || m.Fragment != "good" {
		t.Errorf("late joiner program = %+v", m)
	}
	if m := readMessage(t, late); m.Type != "diagnostics" {
		t.Errorf("late joiner diagnostics = %+v", m)
	}
}

func TestHubDropsUniformsOfReplacedProgram(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	hub.Compile("vs", "first")
	hub.SetUniform("u_fx1_scale", effects.Float, effects.Number(2))
	hub.Compile("vs", "second")
	hub.SetUniform("u_fx2_speed", effects.Float, effects.Number(5))

	conn := dial(t, srv)
	if m := readMessage(t, conn); m.Type != "compile" || m.Fragment != "second" {
		t.Fatalf("first message = %+v", m)
	}
	if m := readMessage(t, conn); m.Type != "uniform" || m.Name != "u_fx2_speed" {
		t.Fatalf("second message = %+v", m)
	}

	// a marker broadcast shows whether anything else was queued first
	hub.SetUniform("u_fx2_speed", effects.Float, effects.Number(6))
	if m := readMessage(t, conn); m.Name != "u_fx2_speed" || m.Data[0] != 6 {
		t.Errorf("stale uniform replayed: %+v", m)
	}

	hub.Compile("vs", "broken")
	late := dial(t, srv)
	readMessage(t, late)
	if m := readMessage(t, late); m.Type != "uniform" || m.Name != "u_fx2_speed" {
		t.Errorf("rejected program cleared uniforms: %+v", m)
	}
}

func TestHubRejectsForeignOrigins(t *testing.T) {
	_, srv := newTestHub(t, nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://elsewhere.example"}})
	if err == nil {
		conn.Close()
		t.Fatal("connection from another origin accepted")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v, want 403", resp)
	}
	if resp != nil {
		resp.Body.Close()
	}

	conn, resp, err = websocket.DefaultDialer.Dial(url, http.Header{"Origin": {srv.URL}})
	if err != nil {
		t.Fatalf("same origin rejected: %v", err)
	}
	conn.Close()
	resp.Body.Close()
}

func TestHubForwardsClientMessages(t *testing.T) {
	got := make(chan ClientMessage, 4)
	hub, srv := newTestHub(t, func(m ClientMessage) { got <- m })
	hub.Compile("vs", "fs")
	conn := dial(t, srv)
	readMessage(t, conn)

	conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
	conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"setParam","key":"fx1_scale","value":4}`))

	select {
	case m := <-got:
		if m.Type != "setParam" || m.Key != "fx1_scale" || m.Value == nil || *m.Value != effects.Number(4) {
			t.Errorf("message = %+v", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("client message not forwarded")
	}
}

func TestHubServesPreviewPage(t *testing.T) {
	_, srv := newTestHub(t, nil)
	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "webgl2") {
		t.Errorf("status %d, body %.60q", resp.StatusCode, body)
	}

	missing, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", missing.StatusCode)
	}
}

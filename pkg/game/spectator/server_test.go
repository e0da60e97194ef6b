package spectator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mazearena/pkg/engine/logging"
	"mazearena/pkg/game/config"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/state"
)

func newTestGame(t *testing.T) *state.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Players = 3
	cfg.Grid.Rows, cfg.Grid.Cols = 12, 16
	cfg.Grid.Rooms = 2
	g, err := state.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame error = %v", err)
	}
	return g
}

func newTestServer(t *testing.T, g *state.Game) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(g, logging.Discard())
	g.AddObserver(s)
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URIWS + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestState_ReturnsSnapshot(t *testing.T) {
	g := newTestGame(t)
	_, srv := newTestServer(t, g)

	resp, err := http.Get(srv.URL + URIState)
	if err != nil {
		t.Fatalf("GET state: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var snap state.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Rows != 12 || snap.Cols != 16 || len(snap.Cells) != 12 || len(snap.Players) != 3 {
		t.Errorf("snapshot = %d x %d with %d players", snap.Rows, snap.Cols, len(snap.Players))
	}
}

func TestState_ViewerRedactsForeignBombs(t *testing.T) {
	g := newTestGame(t)
	_, srv := newTestServer(t, g)

	cell := g.Grid().OpenEmptyCells()[0]
	cell.Put(entities.NewBomb(500, "Grenade", 15, 3, 77))

	var full, redacted state.Snapshot
	getJSON(t, srv.URL+URIState, &full)
	getJSON(t, srv.URL+URIState+"?viewer=1", &redacted)
	if full.Cells[cell.Row][cell.Col].Kind != state.ViewBomb {
		t.Errorf("full state hides the bomb")
	}
	if redacted.Cells[cell.Row][cell.Col].Kind != "" {
		t.Errorf("viewer 1 sees a bomb owned by 77")
	}
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestSchema_DescribesSnapshot(t *testing.T) {
	_, srv := newTestServer(t, newTestGame(t))

	resp, err := http.Get(srv.URL + URISchema)
	if err != nil {
		t.Fatalf("GET schema: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	for _, want := range []string{"Snapshot", "CellView", "\"turn\""} {
		if !strings.Contains(string(body), want) {
			t.Errorf("schema missing %s", want)
		}
	}
}

func TestRoutes_RejectWrongMethod(t *testing.T) {
	_, srv := newTestServer(t, newTestGame(t))
	resp, err := http.Post(srv.URL+URIState, "application/json", nil)
	if err != nil {
		t.Fatalf("POST state: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("POST to the read-only state route succeeded")
	}
}

func TestWS_StreamsTurnsAsJSON(t *testing.T) {
	g := newTestGame(t)
	s, srv := newTestServer(t, g)
	conn := dial(t, srv, "")

	kind, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read initial state: %v", err)
	}
	var snap state.Snapshot
	if kind != websocket.TextMessage || json.Unmarshal(payload, &snap) != nil || snap.Turn != 0 {
		t.Fatalf("initial frame kind %d turn %d", kind, snap.Turn)
	}
	if s.Hub().Len() != 1 {
		t.Errorf("hub clients = %d, want 1", s.Hub().Len())
	}

	if _, err := g.AdvanceTurn(context.Background()); err != nil {
		t.Fatalf("AdvanceTurn error = %v", err)
	}
	_, payload, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read turn: %v", err)
	}
	if err := json.Unmarshal(payload, &snap); err != nil || snap.Turn != 1 || snap.Current == "" {
		t.Errorf("turn frame = %+v, %v", snap.Turn, err)
	}
}

func TestWS_MsgpackFrames(t *testing.T) {
	g := newTestGame(t)
	_, srv := newTestServer(t, g)
	conn := dial(t, srv, "?codec=msgpack")

	kind, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read initial state: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("frame kind = %d, want binary", kind)
	}
	var snap state.Snapshot
	if err := Decode(payload, CodecMsgpack, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Rows != 12 || len(snap.Players) != 3 {
		t.Errorf("snapshot = %d rows, %d players", snap.Rows, len(snap.Players))
	}
}

func TestWS_UnknownCodec(t *testing.T) {
	_, srv := newTestServer(t, newTestGame(t))
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URIWS + "?codec=xml"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial with unknown codec succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Errorf("response = %v, want 400", resp)
	}
}

func TestHub_DropsSlowClients(t *testing.T) {
	h := NewHub(logging.Discard())
	slow := newClient(nil, CodecJSON)
	h.register(slow, frame{kind: websocket.TextMessage, data: []byte("{}")})

	for i := 0; i < sendBuffer; i++ {
		h.Broadcast(state.Snapshot{Turn: i})
	}
	if h.Len() != 0 {
		t.Fatalf("slow client still registered")
	}
	n := 0
	for range slow.send {
		n++
	}
	if n != sendBuffer {
		t.Errorf("queued frames = %d, want %d", n, sendBuffer)
	}

	h.unregister(slow)
}

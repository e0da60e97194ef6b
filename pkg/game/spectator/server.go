// Package spectator serves a read-only feed of a running match over HTTP
// and websockets.
package spectator

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/invopop/jsonschema"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"mazearena/pkg/game/state"
)

// Routes
const (
	URIState  = "/state"
	URISchema = "/schema"
	URIWS     = "/ws"
)

// Source provides the snapshots served to spectators. *state.Game
// implements it.
type Source interface {
	Snapshot() state.Snapshot
}

// Server routes spectator requests and streams events to websocket clients.
// Register it with Game.AddObserver to stream every turn.
type Server struct {
	router   *way.Router
	source   Source
	hub      *Hub
	upgrader websocket.Upgrader
	log      log.FieldLogger
	schema   []byte
}

// NewServer creates the spectator server for src
func NewServer(src Source, logger log.FieldLogger) *Server {
	s := &Server{
		source: src,
		hub:    NewHub(logger),
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	schema, err := json.Marshal(jsonschema.Reflect(&state.Snapshot{}))
	if err != nil {
		logger.WithError(err).Error("failed to build snapshot schema")
	}
	s.schema = schema
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIState, s.handleState)
	s.router.HandleFunc("GET", URISchema, s.handleSchema)
	s.router.HandleFunc("GET", URIWS, s.handleWS)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// StateChanged implements state.Observer
func (s *Server) StateChanged(ev state.Event) {
	s.hub.StateChanged(ev)
}

// Hub returns the websocket fan-out
func (s *Server) Hub() *Hub {
	return s.hub
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// viewer reads the optional ?viewer=<player id> redaction parameter
func viewer(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get("viewer"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap := s.source.Snapshot()
	if id, ok := viewer(r); ok {
		snap.Cells = state.Redact(snap.Cells, id)
	}
	if err := writeJSON(w, http.StatusOK, snap); err != nil {
		s.log.WithError(err).Warn("failed to write state")
	}
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if s.schema == nil {
		http.Error(w, "schema unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(s.schema)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	codec := r.URL.Query().Get("codec")
	if !validCodec(codec) {
		http.Error(w, "unknown codec", http.StatusBadRequest)
		return
	}

	initial, kind, err := Encode(s.source.Snapshot(), codec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := newClient(conn, codec)
	s.hub.register(c, frame{kind: kind, data: initial})
	s.log.WithFields(log.Fields{"remote": r.RemoteAddr, "codec": codec}).Info("spectator connected")

	go s.hub.writePump(c)
	s.hub.readPump(c)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/store"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Variant  store.Variant `json:"variant"`
	Players  []string      `json:"players"`
	HandSize int           `json:"hand_size,omitempty"`
	Seed     int64         `json:"seed,omitempty"`
}

type NewGameRes struct {
	GameID  string        `json:"game_id"`
	Variant store.Variant `json:"variant"`
	Seats   []store.Seat  `json:"seats"`
}

type GetGameRes struct {
	GameID  string        `json:"game_id"`
	Variant store.Variant `json:"variant"`
	State   interface{}   `json:"state"`
}

// CommandReq is a command for a game. Commands made by a player carry
// the player ID of their seat instead of a player number.
type CommandReq struct {
	PlayerID string `json:"player_id,omitempty"`
	protocol.CommandContext
}

// EventsMsg is sent down the event stream whenever a game moves on
type EventsMsg struct {
	GameID string       `json:"game_id"`
	Events []game.Event `json:"events"`
}

// GameServer is a web table: any number of games, each played from one
// or more browsers
type GameServer struct {
	store    store.GameStore
	log      *logrus.Logger
	settings store.Settings
	hub      *hub
	http.Server
}

// NewServer creates a new GameServer. A nil logger discards output.
func NewServer(gs store.GameStore, logger *logrus.Logger) *GameServer {
	if logger == nil {
		logger = game.DiscardLogger()
	}

	s := &GameServer{
		store:    gs,
		log:      logger,
		settings: store.Settings{Logger: logger},
		hub:      newHub(),
	}

	router := http.NewServeMux()
	router.HandleFunc("/", s.HandleRoot)
	router.HandleFunc("/new", s.HandleNewGame)
	router.HandleFunc("/game/", s.HandleGame)
	router.HandleFunc("/ws", s.HandleWS)

	var h http.Handler = router
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.LoggingHandler(logger.WriterLevel(logrus.DebugLevel), h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(logger))(h)

	s.Handler = h
	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"games":    g.store.GameIDs(),
		"variants": store.Variants,
	})
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	settings := g.settings
	settings.HandSize = data.HandSize
	settings.Seed = data.Seed

	session, err := g.store.CreateGame(data.Variant, data.Players, settings)
	if err != nil {
		g.log.WithError(err).WithField("variant", data.Variant).Info("could not create game")
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}

	g.log.WithFields(logrus.Fields{
		"game":    session.Game.ID(),
		"variant": session.Variant,
	}).Info("game created")

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID:  session.Game.ID(),
		Variant: session.Variant,
		Seats:   session.Seats,
	})
}

// HandleGame serves GET /game/{id} and POST /game/{id}/command
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/"), "/"), "/")
	gameID := parts[0]
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		viewer, err := viewerOf(r, session)
		if err != nil {
			writeText(w, http.StatusForbidden, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, GetGameRes{
			GameID:  gameID,
			Variant: session.Variant,
			State:   session.Game.View(viewer),
		})
	case len(parts) == 2 && parts[1] == "command" && r.Method == http.MethodPost:
		g.handleCommand(w, r, session)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleCommand(w http.ResponseWriter, r *http.Request, session *store.Session) {
	var req CommandReq
	err := json.NewDecoder(r.Body).Decode(&req)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	ctx := req.CommandContext
	if needsPlayer(ctx.Command) {
		n, err := session.Player(req.PlayerID)
		if err != nil {
			writeText(w, http.StatusForbidden, err.Error())
			return
		}
		ctx.Player = n
	}

	res := session.Game.Process(ctx)
	if res.IsSuccess {
		g.hub.notify(session.Game.ID())
	}
	writeJSON(w, http.StatusOK, res)
}

// viewerOf is the seat named by the player_id query parameter, or 0 for
// a spectator when there is none
func viewerOf(r *http.Request, session *store.Session) (int, error) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		return 0, nil
	}
	return session.Player(playerID)
}

func needsPlayer(c protocol.Cmd) bool {
	switch c {
	case protocol.Play, protocol.SelectSuit, protocol.Take:
		return true
	}
	return false
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func writeParseError(err error, w http.ResponseWriter) {
	if errors.Is(err, io.EOF) {
		writeText(w, http.StatusBadRequest, "missing body")
		return
	}
	writeText(w, http.StatusBadRequest, fmt.Sprintf("could not parse body: %v", err))
}

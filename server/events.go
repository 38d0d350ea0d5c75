package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/cardtable/game"
)

const writeWait = 10 * time.Second

// hub wakes the event streams of a game when it changes
type hub struct {
	mu        sync.Mutex
	listeners map[string]map[chan struct{}]struct{}
}

func newHub() *hub {
	return &hub{listeners: map[string]map[chan struct{}]struct{}{}}
}

func (h *hub) subscribe(gameID string) chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan struct{}, 1)
	if h.listeners[gameID] == nil {
		h.listeners[gameID] = map[chan struct{}]struct{}{}
	}
	h.listeners[gameID][ch] = struct{}{}
	return ch
}

func (h *hub) unsubscribe(gameID string, ch chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.listeners[gameID], ch)
	if len(h.listeners[gameID]) == 0 {
		delete(h.listeners, gameID)
	}
}

// notify never blocks; a listener that has not caught up yet will send
// everything new when it does
func (h *hub) notify(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.listeners[gameID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// HandleWS streams a game's event log over a websocket: everything so
// far on connect, then new events as commands succeed. Cards are shown as
// the player named by player_id would see them.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}
	session := g.store.FindGame(gameID)
	if session == nil {
		writeText(w, http.StatusBadRequest, unknownGameIDMsg(gameID))
		return
	}
	viewer, err := viewerOf(r, session)
	if err != nil {
		writeText(w, http.StatusForbidden, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Warn("could not upgrade to websocket")
		return
	}
	defer conn.Close()

	log := g.log.WithField("game", gameID)
	log.Debug("event stream opened")

	updates := g.hub.subscribe(gameID)
	defer g.hub.unsubscribe(gameID, updates)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	send := func() error {
		events := game.Redact(since(session.Game.Events(), sent), viewer)
		if len(events) == 0 {
			return nil
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(EventsMsg{GameID: gameID, Events: events}); err != nil {
			return err
		}
		sent = events[len(events)-1].Number
		return nil
	}

	if err := send(); err != nil {
		log.WithError(err).Debug("event stream closed")
		return
	}
	for {
		select {
		case <-updates:
			if err := send(); err != nil {
				log.WithError(err).Debug("event stream closed")
				return
			}
		case <-closed:
			log.Debug("event stream closed by client")
			conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

func since(events []game.Event, number int) []game.Event {
	out := []game.Event{}
	for _, e := range events {
		if e.Number > number {
			out = append(out, e)
		}
	}
	return out
}

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/store"
	"github.com/minaorangina/cardtable/table"
	"github.com/stretchr/testify/require"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newCommandRequest(t *testing.T, gameID string, req CommandReq) *http.Request {
	t.Helper()
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/command", bytes.NewBuffer(mustMakeJson(t, req)))
	return request
}

// newServerWithGame returns a server holding one dealt game of variant
func newServerWithGame(t *testing.T, variant store.Variant) (*GameServer, *store.Session) {
	t.Helper()

	gs := store.NewInMemoryGameStore()
	session, err := gs.CreateGame(variant, []string{"Harry", "Sally"}, store.Settings{Seed: 3})
	require.NoError(t, err)
	require.True(t, session.Game.Process(protocol.DealContext(nil)).IsSuccess)

	return NewServer(gs, nil), session
}

// decodeTable reads the table out of a GET /game/{id} response
func decodeTable(t *testing.T, body io.Reader) *table.Table {
	t.Helper()
	var got struct {
		State struct {
			Table *table.Table `json:"table"`
		} `json:"state"`
	}
	decodeBody(t, body, &got)
	require.NotNil(t, got.State.Table)
	return got.State.Table
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeBody(t *testing.T, body io.Reader, into interface{}) {
	t.Helper()
	bodyBytes, err := io.ReadAll(body)
	utils.AssertNoError(t, err)
	if err := json.Unmarshal(bodyBytes, into); err != nil {
		t.Fatalf("could not unmarshal json %q: %s", bodyBytes, err.Error())
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %v", url, code, err)
	}
	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

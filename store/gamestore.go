package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrUnknownPlayerID = errors.New("unknown player ID")
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrGameExists      = errors.New("game already exists")
)

func NewID() string {
	return uuid.NewV4().String()
}

// Seat links a player ID handed to a client to a player number
type Seat struct {
	PlayerID string `json:"player_id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
}

// Session is a game and the seats around it
type Session struct {
	Game    Game
	Variant Variant
	Seats   []Seat
}

// Player looks up the player number for a player ID
func (s *Session) Player(playerID string) (int, error) {
	for _, seat := range s.Seats {
		if seat.PlayerID == playerID {
			return seat.Number, nil
		}
	}
	return 0, ErrUnknownPlayerID
}

type GameStore interface {
	FindGame(gameID string) *Session
	AddGame(variant Variant, g Game, players []string) (*Session, error)
	CreateGame(variant Variant, players []string, s Settings) (*Session, error)
	RemoveGame(gameID string) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to session
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]*Session
}

func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{Games: map[string]*Session{}}
}

func (s *InMemoryGameStore) FindGame(gameID string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Games[gameID]
}

// AddGame stores a game, giving each player a seat with a new player ID
func (s *InMemoryGameStore) AddGame(variant Variant, g Game, players []string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[g.ID()]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, g.ID())
	}

	session := &Session{Game: g, Variant: variant}
	for i, name := range players {
		session.Seats = append(session.Seats, Seat{PlayerID: NewID(), Number: i + 1, Name: name})
	}
	s.Games[g.ID()] = session
	return session, nil
}

// CreateGame starts a new game with a fresh ID
func (s *InMemoryGameStore) CreateGame(variant Variant, players []string, settings Settings) (*Session, error) {
	g, err := NewGame(variant, NewID(), players, settings)
	if err != nil {
		return nil, err
	}
	return s.AddGame(variant, g, players)
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Games[gameID]; !ok {
		return ErrUnknownGameID
	}
	delete(s.Games, gameID)
	return nil
}

func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.Games))
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

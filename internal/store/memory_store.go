package store

import (
	"errors"
	"sync"

	domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("game not found")
	// ErrDuplicateTitle is returned when a record with the same title exists.
	ErrDuplicateTitle = errors.New("game title already exists")
)

// MemoryStore keeps games in insertion order and assigns sequential ids.
// Ids start at 1 and are never reused after a delete.
type MemoryStore struct {
	mu     sync.RWMutex
	games  []domaingames.Game
	nextID int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// ListGames returns a copy of the current games in insertion order.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, len(s.games))
	copy(result, s.games)
	return result
}

// GetGame retrieves a game by id.
func (s *MemoryStore) GetGame(id int) (domaingames.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.games[i], nil
	}
	return domaingames.Game{}, ErrNotFound
}

// CreateGame stores g under the next id and returns that id. The incoming id
// is ignored. Duplicate titles leave the store and counter untouched.
func (s *MemoryStore) CreateGame(g domaingames.Game) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.games {
		if existing.Title == g.Title {
			return 0, ErrDuplicateTitle
		}
	}

	g.ID = s.nextID
	s.nextID++
	s.games = append(s.games, g)
	return g.ID, nil
}

// DeleteGame removes the game with the given id and returns that id.
func (s *MemoryStore) DeleteGame(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, ErrNotFound
	}
	s.games = append(s.games[:i], s.games[i+1:]...)
	return id, nil
}

// Len reports how many games are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// indexOf expects s.mu to be held.
func (s *MemoryStore) indexOf(id int) int {
	for i, g := range s.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

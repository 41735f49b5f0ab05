package games

import (
	"fmt"
	"time"

	domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/games-catalog-service/internal/metrics"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id int) (domaingames.Game, error)
	CreateGame(game domaingames.Game) (int, error)
	DeleteGame(id int) (int, error)
}

// DefaultGames are loaded by Seed on startup.
var DefaultGames = []domaingames.Game{
	{Title: "Pacman", Genre: "Arcade", ReleaseYear: 1980},
}

// Service coordinates game operations using a Store.
type Service struct {
	store    Store
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service with the provided Store. recorder may be nil.
func NewService(store Store, recorder *metrics.Recorder) *Service {
	return &Service{store: store, recorder: recorder, now: time.Now}
}

// Games returns every stored game in insertion order.
func (s *Service) Games() []domaingames.Game {
	start := s.now()
	games := s.store.ListGames()
	s.record(metrics.OpList, start, nil)
	return games
}

// GameByID returns a single game or store.ErrNotFound.
func (s *Service) GameByID(id int) (domaingames.Game, error) {
	start := s.now()
	game, err := s.store.GetGame(id)
	s.record(metrics.OpGet, start, err)
	if err != nil {
		return domaingames.Game{}, fmt.Errorf("get game %d: %w", id, err)
	}
	return game, nil
}

// CreateGame validates the payload before touching the store, then stores it
// and returns the assigned id.
func (s *Service) CreateGame(in domaingames.NewGame) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return s.create(in.Game())
}

// DeleteGame removes a game and returns its id.
func (s *Service) DeleteGame(id int) (int, error) {
	start := s.now()
	deleted, err := s.store.DeleteGame(id)
	s.record(metrics.OpDelete, start, err)
	if err != nil {
		return 0, fmt.Errorf("delete game %d: %w", id, err)
	}
	s.recorder.RecordGamesStored(-1)
	return deleted, nil
}

// Seed inserts DefaultGames through the normal create path.
func (s *Service) Seed() error {
	for _, g := range DefaultGames {
		if _, err := s.create(g); err != nil {
			return fmt.Errorf("seed games: %w", err)
		}
	}
	return nil
}

func (s *Service) create(game domaingames.Game) (int, error) {
	start := s.now()
	id, err := s.store.CreateGame(game)
	s.record(metrics.OpCreate, start, err)
	if err != nil {
		return 0, fmt.Errorf("create game %q: %w", game.Title, err)
	}
	s.recorder.RecordGamesStored(1)
	return id, nil
}

func (s *Service) record(op string, start time.Time, err error) {
	s.recorder.RecordStoreOperation(op, s.now().Sub(start), err)
}

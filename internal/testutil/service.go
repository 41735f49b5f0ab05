package testutil

import (
	"github.com/preston-bernstein/games-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/games-catalog-service/internal/store"
)

// NewService builds a games service over a fresh store seeded with the default games.
func NewService() *games.Service {
	svc := games.NewService(store.NewMemoryStore(), nil)
	if err := svc.Seed(); err != nil {
		panic(err)
	}
	return svc
}

// NewServiceWithGames builds a games service whose store holds exactly g, ids assigned in order.
func NewServiceWithGames(g []domaingames.Game) *games.Service {
	ms := store.NewMemoryStore()
	for _, game := range g {
		if _, err := ms.CreateGame(game); err != nil {
			panic(err)
		}
	}
	return games.NewService(ms, nil)
}

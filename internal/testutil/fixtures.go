package testutil

import domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"

// SampleGame returns a game fixture with the given title.
func SampleGame(title string) domaingames.Game {
	return domaingames.Game{Title: title, Genre: "Arcade", ReleaseYear: 1980}
}

// SampleNewGame returns a complete create payload with the given title.
func SampleNewGame(title string) domaingames.NewGame {
	genre := "Arcade"
	year := 1980
	return domaingames.NewGame{Title: &title, Genre: &genre, ReleaseYear: &year}
}

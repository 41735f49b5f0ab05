package games

// Game is the canonical game record exposed by the service.
type Game struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
}

// NewGame is the create payload. Pointer fields distinguish an absent
// field from one sent with a zero value.
type NewGame struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"releaseYear"`
}

// Validate reports every required field that is absent or empty.
func (n NewGame) Validate() error {
	var missing []string
	if n.Title == nil || *n.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if n.Genre == nil || *n.Genre == "" {
		missing = append(missing, FieldGenre)
	}
	if n.ReleaseYear == nil || *n.ReleaseYear == 0 {
		missing = append(missing, FieldReleaseYear)
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Game converts a validated payload into a record without an id.
// Call Validate first; absent fields become zero values.
func (n NewGame) Game() Game {
	var g Game
	if n.Title != nil {
		g.Title = *n.Title
	}
	if n.Genre != nil {
		g.Genre = *n.Genre
	}
	if n.ReleaseYear != nil {
		g.ReleaseYear = *n.ReleaseYear
	}
	return g
}

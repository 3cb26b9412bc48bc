package schema

// MovieTable represents the 'events.movie' table
type MovieTable struct {
	Table     string
	ID        string
	Title     string
	TitleSort string
	Year      string
	IMDbID    string
	CreatedAt string
	UpdatedAt string
}

// Movie is the schema definition for events.movie
var Movie = MovieTable{
	Table:     "events.movie",
	ID:        "id",
	Title:     "title",
	TitleSort: "title_sort",
	Year:      "year",
	IMDbID:    "imdb_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// PlayTable represents the 'events.play' table
type PlayTable struct {
	Table     string
	ID        string
	Title     string
	TitleSort string
	CreatedAt string
	UpdatedAt string
}

// Play is the schema definition for events.play
var Play = PlayTable{
	Table:     "events.play",
	ID:        "id",
	Title:     "title",
	TitleSort: "title_sort",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// PlayProductionTable represents the 'events.play_production' table
type PlayProductionTable struct {
	Table     string
	ID        string
	PlayID    string
	Title     string
	TitleSort string
	CreatedAt string
	UpdatedAt string
}

// PlayProduction is the schema definition for events.play_production
var PlayProduction = PlayProductionTable{
	Table:     "events.play_production",
	ID:        "id",
	PlayID:    "play_id",
	Title:     "title",
	TitleSort: "title_sort",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

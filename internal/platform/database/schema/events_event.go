package schema

// EventTable represents the 'events.event' base table.
// Every row has exactly one row in one of the extension tables below.
type EventTable struct {
	Table     string
	ID        string
	Kind      string
	Date      string
	VenueID   string
	CreatedAt string
	UpdatedAt string
}

// Event is the schema definition for events.event
var Event = EventTable{
	Table:     "events.event",
	ID:        "id",
	Kind:      "kind",
	Date:      "date",
	VenueID:   "venue_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// TitledEventTable represents an extension table carrying its own title
// ('events.concert', 'events.misc_event').
type TitledEventTable struct {
	Table     string
	EventID   string
	Title     string
	TitleSort string
}

// Concert is the schema definition for events.concert
var Concert = TitledEventTable{
	Table:     "events.concert",
	EventID:   "event_id",
	Title:     "title",
	TitleSort: "title_sort",
}

// MiscEvent is the schema definition for events.misc_event
var MiscEvent = TitledEventTable{
	Table:     "events.misc_event",
	EventID:   "event_id",
	Title:     "title",
	TitleSort: "title_sort",
}

// MovieEventTable represents the 'events.movie_event' table
type MovieEventTable struct {
	Table   string
	EventID string
	MovieID string
}

// MovieEvent is the schema definition for events.movie_event
var MovieEvent = MovieEventTable{
	Table:   "events.movie_event",
	EventID: "event_id",
	MovieID: "movie_id",
}

// PlayProductionEventTable represents the 'events.play_production_event' table
type PlayProductionEventTable struct {
	Table        string
	EventID      string
	ProductionID string
}

// PlayProductionEvent is the schema definition for events.play_production_event
var PlayProductionEvent = PlayProductionEventTable{
	Table:        "events.play_production_event",
	EventID:      "event_id",
	ProductionID: "production_id",
}

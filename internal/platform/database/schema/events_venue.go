package schema

// VenueTable represents the 'events.venue' table
type VenueTable struct {
	Table     string
	ID        string
	Name      string
	NameSort  string
	Latitude  string
	Longitude string
	Address   string
	Country   string
	CreatedAt string
	UpdatedAt string
}

// Venue is the schema definition for events.venue
var Venue = VenueTable{
	Table:     "events.venue",
	ID:        "id",
	Name:      "name",
	NameSort:  "name_sort",
	Latitude:  "latitude",
	Longitude: "longitude",
	Address:   "address",
	Country:   "country",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

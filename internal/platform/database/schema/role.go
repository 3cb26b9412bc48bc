package schema

// RoleTable represents one of the six creator role tables.
// They share every column except the parent reference.
type RoleTable struct {
	Table     string
	ID        string
	CreatorID string
	ParentID  string
	RoleName  string
	RoleOrder string
	CreatedAt string
	UpdatedAt string
}

func newRoleTable(table, parentColumn string) RoleTable {
	return RoleTable{
		Table:     table,
		ID:        "id",
		CreatorID: "creator_id",
		ParentID:  parentColumn,
		RoleName:  "role_name",
		RoleOrder: "role_order",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",
	}
}

var (
	// PublicationRole is the schema definition for reading.publication_role
	PublicationRole = newRoleTable("reading.publication_role", "publication_id")

	// ConcertRole is the schema definition for events.concert_role
	ConcertRole = newRoleTable("events.concert_role", "concert_id")

	// MovieRole is the schema definition for events.movie_role
	MovieRole = newRoleTable("events.movie_role", "movie_id")

	// PlayRole is the schema definition for events.play_role
	PlayRole = newRoleTable("events.play_role", "play_id")

	// PlayProductionRole is the schema definition for events.play_production_role
	PlayProductionRole = newRoleTable("events.play_production_role", "production_id")

	// MiscEventRole is the schema definition for events.misc_event_role
	MiscEventRole = newRoleTable("events.misc_event_role", "misc_event_id")
)

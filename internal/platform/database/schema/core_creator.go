package schema

// CreatorTable represents the 'core.creator' table
type CreatorTable struct {
	Table     string
	ID        string
	Name      string
	NameSort  string
	CreatedAt string
	UpdatedAt string
}

// Creator is the schema definition for core.creator
var Creator = CreatorTable{
	Table:     "core.creator",
	ID:        "id",
	Name:      "name",
	NameSort:  "name_sort",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CreatorTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameSort, t.CreatedAt, t.UpdatedAt}
}

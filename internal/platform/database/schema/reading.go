package schema

// PublicationSeriesTable represents the 'reading.publication_series' table
type PublicationSeriesTable struct {
	Table     string
	ID        string
	Title     string
	TitleSort string
	URL       string
	CreatedAt string
	UpdatedAt string
}

// PublicationSeries is the schema definition for reading.publication_series
var PublicationSeries = PublicationSeriesTable{
	Table:     "reading.publication_series",
	ID:        "id",
	Title:     "title",
	TitleSort: "title_sort",
	URL:       "url",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// PublicationTable represents the 'reading.publication' table
type PublicationTable struct {
	Table       string
	ID          string
	Title       string
	TitleSort   string
	Kind        string
	SeriesID    string
	OfficialURL string
	ISBNUK      string
	ISBNUS      string
	NotesURL    string
	CreatedAt   string
	UpdatedAt   string
}

// Publication is the schema definition for reading.publication
var Publication = PublicationTable{
	Table:       "reading.publication",
	ID:          "id",
	Title:       "title",
	TitleSort:   "title_sort",
	Kind:        "kind",
	SeriesID:    "series_id",
	OfficialURL: "official_url",
	ISBNUK:      "isbn_uk",
	ISBNUS:      "isbn_us",
	NotesURL:    "notes_url",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// ReadingTable represents the 'reading.reading' table
type ReadingTable struct {
	Table            string
	ID               string
	PublicationID    string
	StartDate        string
	StartGranularity string
	EndDate          string
	EndGranularity   string
	IsFinished       string
	CreatedAt        string
	UpdatedAt        string
}

// Reading is the schema definition for reading.reading
var Reading = ReadingTable{
	Table:            "reading.reading",
	ID:               "id",
	PublicationID:    "publication_id",
	StartDate:        "start_date",
	StartGranularity: "start_granularity",
	EndDate:          "end_date",
	EndGranularity:   "end_granularity",
	IsFinished:       "is_finished",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

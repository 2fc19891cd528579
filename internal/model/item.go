package model

// Item is the domain model for a todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Summary holds the derived counts shown in headers.
type Summary struct {
	Total     int
	Completed int
}

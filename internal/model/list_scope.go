package model

// ListScope selects the listing dimension: the global index (both fields
// nil), one category, or one author.
type ListScope struct {
	CategoryID     *int64
	AuthorUsername *string
}

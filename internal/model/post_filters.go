package model

// PostFilters is the repository-level query shape for post listings.
// ViewerID, when set, keeps that author's unpublished and future-dated
// posts in the result; otherwise only publicly visible posts qualify.
type PostFilters struct {
	AuthorID   *int64
	CategoryID *int64
	ViewerID   *int64
	Limit      *int
	Offset     *int
}

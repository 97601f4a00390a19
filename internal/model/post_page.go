package model

// PostPage is one listing window plus the metadata the presentation layer
// needs to render pagination controls.
type PostPage struct {
	Items      []*PostDetailed `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
	HasNext    bool            `json:"has_next"`
	HasPrev    bool            `json:"has_prev"`
}

package pagination

// Page describes one fixed-size window over an ordered result set.
// Numbers are 1-indexed. An empty result set still yields one empty page.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Clamp resolves a requested page number against the available range.
// Out-of-range requests land on the nearest valid page: the first page for
// zero or negative numbers, the last page for numbers past the end.
func Clamp(totalItems, size, requested int) Page {
	if size < 1 {
		size = 1
	}

	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

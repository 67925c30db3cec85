package portal

// Page is one client-side window over a full result list. The backend
// returns whole lists; the list views page and filter locally.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

const defaultPerPage = 10

// Paginate windows items to the requested page. Pages are 1-based; an
// out-of-range page yields an empty page with the totals intact.
func Paginate[T any](items []T, pageNumber, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if pageNumber <= 0 {
		pageNumber = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage

	start := (pageNumber - 1) * perPage
	if start > totalItems {
		start = totalItems
	}
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// Paginate slices an already-fetched result set. Page numbers start at 1;
// a zero page size disables pagination and returns everything.
func Paginate[T any](items []T, page, pageSize int) ([]T, *Pagination) {
	total := len(items)
	if pageSize <= 0 {
		return items, nil
	}
	if page <= 0 {
		page = 1
	}

	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}

	totalPages := int64((total + pageSize - 1) / pageSize)
	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: int64(total),
		HasMore:    to < total,
		From:       from,
		To:         to,
	}
	return items[from:to], p
}

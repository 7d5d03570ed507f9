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

// NewPagination describes page (1-based) of total items. From and To are
// 1-based inclusive positions, both zero for an empty page.
func NewPagination(page, pageSize, total int) *Pagination {
	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: int64(total),
	}
	if pageSize > 0 {
		p.TotalPages = int64((total + pageSize - 1) / pageSize)
	}
	if page < 1 || pageSize < 1 || total <= 0 {
		return p
	}
	// Any page past the last one, however large, is an empty range.
	start := (int64(page) - 1) * int64(pageSize)
	if start < 0 || start >= int64(total) || start/int64(pageSize) != int64(page)-1 {
		return p
	}
	end := min(int(start)+pageSize, total)
	p.From = int(start) + 1
	p.To = end
	p.HasMore = end < total
	return p
}

// Bounds returns the half-open slice range for the page.
func (p *Pagination) Bounds() (int, int) {
	if p.To == 0 {
		n := int(p.TotalItems)
		return n, n
	}
	return p.From - 1, p.To
}

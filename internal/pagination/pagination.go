package pagination

import "math"

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// Paginate slices items down to the requested page. Collections live fully
// in memory, so paging is a plain slice operation.
func Paginate[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()

	start := (req.Page - 1) * req.PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}

	data := items[start:end]
	if data == nil {
		data = []T{}
	}
	totalPages := int(math.Ceil(float64(len(items)) / float64(req.PageSize)))
	return PageResponse[T]{
		Data:       data,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: int64(len(items)),
		TotalPages: totalPages,
	}
}

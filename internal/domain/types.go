package domain

// --- Shared Response Types ---

// Pagination carries the response metadata for a result window.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes the metadata for a page of total matches.
// TotalPages is ceil(total/limit), zero when nothing matched.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Offset converts a page/limit pair into the store's skip value.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Response standardizes API responses.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination,omitempty"`
	Filters    interface{} `json:"filters,omitempty"`
}

// Package types 定义 HTTP 层请求/响应结构体.
package types

// Pagination 分页元信息。Pages = ceil(Total / Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination 依据总数计算页数.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

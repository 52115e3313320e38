package utils

// Pagination 分页请求参数
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// PagedResult 分页响应结果
type PagedResult struct {
	Items           interface{} `json:"items"`
	PageIndex       int         `json:"pageIndex"`
	PageSize        int         `json:"pageSize"`
	TotalItems      int64       `json:"totalItems"`
	TotalPages      int         `json:"totalPages"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
	HasNextPage     bool        `json:"hasNextPage"`
}

// GetPageOffset 规范化分页参数并计算偏移量
func (p *Pagination) GetPageOffset() (int, int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

// NewPagedResult 用已分页的条目和总数构造分页结果
func NewPagedResult(items interface{}, page, limit int, total int64) *PagedResult {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PagedResult{
		Items:           items,
		PageIndex:       page,
		PageSize:        limit,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}

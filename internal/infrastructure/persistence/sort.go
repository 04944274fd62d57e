package persistence

import (
	"strings"

	"github.com/gemba/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page-based offset and limit
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// applyOrder applies ordering after checking the column against an allowlist.
// OrderBy values arrive from query strings, so anything outside the allowlist
// is silently dropped rather than interpolated into SQL.
func applyOrder(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	if filter.OrderBy == "" || !allowed[filter.OrderBy] {
		return query
	}
	dir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		dir = "DESC"
	}
	return query.Order(filter.OrderBy + " " + dir)
}

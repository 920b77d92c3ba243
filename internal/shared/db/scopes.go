package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies offset/limit. A non-positive limit leaves the query unbounded.
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}

// Search matches query as a case-insensitive substring of any of the columns.
// Runs of whitespace in query are collapsed. An empty query is a no-op.
//
// Example usage:
//
//	db.Scopes(db.Search(q, "title", "description", "city")).Find(&rows)
func Search(query string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		query = strings.Join(strings.Fields(query), " ")
		if query == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(query) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock to the query. Dialects without row locks ignore it.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// isDuplicateKey reports a unique constraint violation. TranslateError maps
// most drivers to gorm.ErrDuplicatedKey; the message check covers the rest.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

package repo

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// isDupKey sniffs unique-constraint violations without relying on
// gorm.ErrDuplicatedKey, which differs across driver versions.
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

// withRowLock adds SELECT ... FOR UPDATE where the engine supports it.
// sqlite has no row locks; its single-writer lock serializes the same way.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

package owner

import "gorm.io/gorm"

// Scope restricts a query to rows owned by the authenticated user. Every
// repository read and write goes through it; ownership is never checked
// anywhere else.
func Scope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

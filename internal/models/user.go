package models

import "time"

// User represents a contact-form submission.
//
// Email is stored trimmed and lowercased; uniqueness is enforced by the
// database constraint, which is the final authority under concurrent
// submissions. CreatedAt is the sort key for listing; ID ordering carries
// no meaning.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex:idx_users_email;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_users_created_at"`
	UpdatedAt time.Time `json:"-"`
}

package models

import (
	"strings"
	"time"
)

// User is an account holder. Password stores the bcrypt hash, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Email     string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string     `gorm:"type:varchar(255)" json:"-"`
	Name      string     `gorm:"type:varchar(100)" json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}

// GetDisplayName falls back to the local part of the email when no name
// was provided at registration.
func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if i := strings.Index(u.Email, "@"); i > 0 {
		return u.Email[:i]
	}
	return u.Email
}

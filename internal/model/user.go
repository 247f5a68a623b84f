package model

import "time"

// User is the stored representation of one account. Username is kept
// lowercased; uniqueness is case-insensitive.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string     `json:"email" gorm:"size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age          int        `json:"age" gorm:"not null"`
	Phone        *string    `json:"phone" gorm:"size:32"`
	CreatedAt    time.Time  `json:"created_at"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
}

// Clone returns a copy safe to hand out after the original record is
// mutated or evicted.
func (u *User) Clone() *User {
	c := *u
	if u.Phone != nil {
		p := *u.Phone
		c.Phone = &p
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}

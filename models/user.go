package models

import "time"

// User is the authenticated identity that owns projects. Accounts are
// provisioned out-of-band: the credential store holds the only known user,
// there is no registration flow and no users table.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

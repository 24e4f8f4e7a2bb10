// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity record. Email is stored lowercased and is unique;
// PasswordHash is a bcrypt hash and must never be logged or serialized.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

package users

import "time"

// User is a record in the user directory. PasswordHash is the bcrypt digest;
// the plaintext is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

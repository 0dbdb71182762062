package users

import (
	"context"
)

// Repository is the user directory contract. GetByEmail does an exact,
// case-sensitive match and returns common.ErrorNotFound when absent.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

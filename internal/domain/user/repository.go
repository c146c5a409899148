package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	ListByRole(ctx context.Context, role Role) ([]*User, error)
	// ListAdminCapable returns every user with the admin role or the
	// admin-override capability; the fanout notifies these on every event.
	ListAdminCapable(ctx context.Context) ([]*User, error)
}

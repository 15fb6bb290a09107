package identity

import "context"

// User is the subset of the provider account record this service reads.
type User struct {
	UID   string
	Email string
}

// IdentityService wraps the external identity provider. The account store and
// its authentication semantics stay provider-owned; nothing is cached here.
type IdentityService interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

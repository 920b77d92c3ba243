package usecases

import (
	"context"

	"github.com/darna-inc/darna/internal/shared/authorization"
)

// TokenIssuer signs access tokens for an authenticated identity.
type TokenIssuer interface {
	IssueToken(identifier string, role authorization.UserRole) (token string, expiresIn int64, err error)
}

// IdentityInvalidator drops cached identities once an account changes.
type IdentityInvalidator interface {
	Forget(email string)
}

// TxRunner runs fn in one database transaction carried by ctx.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

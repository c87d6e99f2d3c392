package auth

import "context"

type AuthService interface {
	LoginEmployee(ctx context.Context, req LoginEmployeeRequest) (SessionResponse, error)
	LoginAdmin(ctx context.Context, req LoginAdminRequest) (SessionResponse, error)
	// Logout always succeeds; revoking an unknown token is a no-op.
	Logout(ctx context.Context, token string) error
}

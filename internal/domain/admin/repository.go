package admin

import (
	"context"
	"errors"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
}

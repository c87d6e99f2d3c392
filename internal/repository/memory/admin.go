package memory

import (
	"context"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
)

type AdminRepository struct {
	dir *Directory
}

func NewAdminRepository(dir *Directory) admin.AdminRepository {
	return &AdminRepository{dir: dir}
}

// GetByID implements admin.AdminRepository.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	for _, a := range r.dir.admins {
		if a.ID == id {
			return cloneAdmin(a), nil
		}
	}
	return admin.Admin{}, admin.ErrAdminNotFound
}

// GetByUsername implements admin.AdminRepository.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (admin.Admin, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	for _, a := range r.dir.admins {
		if a.Username == username {
			return cloneAdmin(a), nil
		}
	}
	return admin.Admin{}, admin.ErrAdminNotFound
}

func cloneAdmin(a admin.Admin) admin.Admin {
	c := a
	c.ManagedCompanies = append([]string(nil), a.ManagedCompanies...)
	return c
}

package auth

import (
	"context"
	"errors"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	adminRepo    admin.AdminRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, adminRepo admin.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
	}
}

// LoginEmployee implements auth.AuthService. Credentials are compared
// with plain case-sensitive equality against the directory; failure is
// always ErrInvalidCredentials, with no unknown-code/wrong-password
// distinction.
func (s *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.LoginEmployeeRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, err
	}
	if emp.Password != req.Password {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, string(auth.RoleEmployee))
	if err != nil {
		return auth.SessionResponse{}, err
	}

	resp := employee.ToResponse(emp)
	return auth.SessionResponse{
		Role:        auth.RoleEmployee,
		Employee:    &resp,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// LoginAdmin implements auth.AuthService.
func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.LoginAdminRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	adm, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, err
	}
	if adm.Password != req.Password {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(adm.ID, string(auth.RoleAdmin))
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		Role: auth.RoleAdmin,
		Admin: &auth.AdminResponse{
			ID:               adm.ID,
			Username:         adm.Username,
			ManagedCompanies: adm.ManagedCompanies,
		},
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	LoginEmployee(w http.ResponseWriter, r *http.Request)
	LoginAdmin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// LoginEmployee implements AuthHandler.
func (a *AuthHandlerImpl) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("LoginEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	session, err := a.authService.LoginEmployee(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in successfully")
	response.Created(w, "Employee logged in successfully", session)
}

// LoginAdmin implements AuthHandler.
func (a *AuthHandlerImpl) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("LoginAdmin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	session, err := a.authService.LoginAdmin(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin logged in successfully")
	response.Created(w, "Admin logged in successfully", session)
}

// Logout implements AuthHandler. Revokes the presented access token;
// always succeeds, even for a token that was never issued.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	if err := a.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

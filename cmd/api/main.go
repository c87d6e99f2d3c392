package main

import (
	"fmt"
	"net/http"

	"github.com/gestaorh/portal-backend-go/internal/config"
	"github.com/gestaorh/portal-backend-go/internal/fixtures"
	appHTTP "github.com/gestaorh/portal-backend-go/internal/handler/http"
	"github.com/gestaorh/portal-backend-go/internal/pkg/jwt"
	"github.com/gestaorh/portal-backend-go/internal/repository/memory"
	authService "github.com/gestaorh/portal-backend-go/internal/service/auth"
	profileService "github.com/gestaorh/portal-backend-go/internal/service/profile"
	rosterService "github.com/gestaorh/portal-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// The directory is the only store: seeded at startup, volatile.
	directory := memory.NewDirectory(fixtures.Companies(), fixtures.Admins(), fixtures.Employees())
	employeeRepo := memory.NewEmployeeRepository(directory)
	companyRepo := memory.NewCompanyRepository(directory)
	adminRepo := memory.NewAdminRepository(directory)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, adminRepo, jwtService)
	profileSvc := profileService.NewProfileService(employeeRepo, adminRepo)
	rosterSvc := rosterService.NewRosterService(employeeRepo, companyRepo, adminRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	companyHandler := appHTTP.NewCompanyHandler(rosterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(profileSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		companyHandler,
		employeeHandler,
		cfg.App.Env,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

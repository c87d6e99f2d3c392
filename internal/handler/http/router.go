package http

import (
	"log/slog"
	"os"

	"github.com/gestaorh/portal-backend-go/internal/handler/http/middleware"
	"github.com/gestaorh/portal-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	env string,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/login", func(r chi.Router) {
				r.Post("/employee", authHandler.LoginEmployee)
				r.Post("/admin", authHandler.LoginAdmin)
			})
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			// Admin only
			r.Route("/companies", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", companyHandler.ListManaged)
				r.Get("/{companyID}/employees", companyHandler.ListEmployees)
			})

			r.Route("/employees/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)

				r.Route("/draft", func(r chi.Router) {
					r.Post("/", employeeHandler.SelectDraft)
					r.Get("/", employeeHandler.GetDraft)
					r.Patch("/", employeeHandler.SetField)
					r.Post("/commit", employeeHandler.CommitDraft)
				})

				r.Route("/courses", func(r chi.Router) {
					r.Post("/", employeeHandler.AddCourse)
					r.Delete("/{courseID}", employeeHandler.RemoveCourse)
				})

				r.Route("/experiences", func(r chi.Router) {
					r.Post("/", employeeHandler.AddExperience)
					r.Delete("/{experienceID}", employeeHandler.RemoveExperience)
				})

				r.Route("/educations", func(r chi.Router) {
					r.Post("/", employeeHandler.AddMainEducation)
					r.Delete("/{educationID}", employeeHandler.RemoveMainEducation)
				})
			})
		})
	})
	return r
}

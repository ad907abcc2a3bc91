package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/config"
	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/handler/http/middleware"
	"github.com/hr-core/hr-core-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Leave       LeaveHandler
	Attendance  AttendanceHandler
	Recruitment RecruitmentHandler
	Performance PerformanceHandler
	Dashboard   DashboardHandler
	Report      ReportHandler
	Assistant   AssistantHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-core"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/login", h.Auth.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Post("/logout", h.Auth.Logout)
				r.Get("/session", h.Auth.Session)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleEmployees))

				r.Get("/", h.Employee.List)
				r.Get("/active", h.Employee.ListActive)
				r.Get("/inactive", h.Employee.ListInactive)
				r.Get("/{id}", h.Employee.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleAttendance))

				r.Get("/time-records", h.Attendance.TimeRecords)
				r.Get("/schedules", h.Attendance.Schedules)
				r.Get("/schedules/inactive", h.Attendance.InactiveSchedules)
				r.Get("/schedules/my", h.Attendance.MyAttendance)
				r.Get("/schedules/{employeeId}", h.Attendance.ScheduleByEmployee)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleAttendance))

				r.Get("/requests/my", h.Leave.ListMine)
				r.Post("/requests", h.Leave.Create)
				r.Post("/requests/advice", h.Leave.Advice)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/requests", h.Leave.List)
					r.Patch("/requests/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleRecruitment))

				r.Get("/postings", h.Recruitment.JobPostings)
				r.Get("/onboarding", h.Recruitment.OnboardingPlans)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModulePerformance))

				r.Get("/reviews", h.Performance.Reviews)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleDashboard))

				r.Get("/my", h.Dashboard.EmployeeDashboard)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Dashboard.AdminDashboard)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleReporting))

				r.Get("/summary", h.Report.Summary)
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleAssistant))

				r.Post("/", h.Assistant.Ask)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Use(middleware.RequireModule(auth.ModuleProfile))

				r.Get("/", h.Employee.Profile)
			})
		})
	})
	return r
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hr-core/hr-core-go/internal/config"
	appHTTP "github.com/hr-core/hr-core-go/internal/handler/http"
	"github.com/hr-core/hr-core-go/internal/pkg/advisory"
	"github.com/hr-core/hr-core-go/internal/pkg/jwt"
	"github.com/hr-core/hr-core-go/internal/pkg/kvstore"
	assistantService "github.com/hr-core/hr-core-go/internal/service/assistant"
	attendanceService "github.com/hr-core/hr-core-go/internal/service/attendance"
	serviceAuth "github.com/hr-core/hr-core-go/internal/service/auth"
	dashboardService "github.com/hr-core/hr-core-go/internal/service/dashboard"
	employeeService "github.com/hr-core/hr-core-go/internal/service/employee"
	leaveService "github.com/hr-core/hr-core-go/internal/service/leave"
	performanceService "github.com/hr-core/hr-core-go/internal/service/performance"
	recruitmentService "github.com/hr-core/hr-core-go/internal/service/recruitment"
	reportService "github.com/hr-core/hr-core-go/internal/service/report"
	"github.com/hr-core/hr-core-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	kv, err := kvstore.New(cfg.DataDir)
	if err != nil {
		fmt.Println("Error opening data directory:", err)
		return
	}
	dataStore := store.New(kv)

	JWTService := jwt.NewJWTService(cfg.JWTSecretKey, cfg.JWTSessionExpiration)

	var advisoryClient advisory.Client
	if cfg.AdvisoryAPIKey != "" {
		timeout, err := time.ParseDuration(cfg.AdvisoryTimeout)
		if err != nil {
			fmt.Println("Invalid ADVISORY_TIMEOUT:", err)
			return
		}
		advisoryClient = advisory.NewHTTPClient(cfg.AdvisoryBaseURL, cfg.AdvisoryAPIKey, cfg.AdvisoryModel, timeout)
	} else {
		fmt.Println("ADVISORY_API_KEY not set, advisory checks disabled")
		advisoryClient = advisory.Disabled{}
	}

	debounce, err := time.ParseDuration(cfg.AdvisoryDebounce)
	if err != nil {
		fmt.Println("Invalid ADVISORY_DEBOUNCE:", err)
		return
	}
	debouncer := advisory.NewDebouncer(advisoryClient, debounce)

	authSvc := serviceAuth.NewAuthService(dataStore, JWTService)
	employeeSvc := employeeService.NewEmployeeService(dataStore)
	leaveSvc := leaveService.NewLeaveService(dataStore, debouncer)
	attendanceSvc := attendanceService.NewAttendanceService(dataStore)
	recruitmentSvc := recruitmentService.NewRecruitmentService(dataStore)
	performanceSvc := performanceService.NewPerformanceService(dataStore)
	dashboardSvc := dashboardService.NewDashboardService(dataStore)
	reportSvc := reportService.NewReportService(dataStore)
	assistantSvc := assistantService.NewAssistantService(advisoryClient)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Assistant:   appHTTP.NewAssistantHandler(assistantSvc),
	})

	port := ":" + cfg.AppPort
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

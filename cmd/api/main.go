package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/peoplecore/backoffice-go/internal/config"
	appHTTP "github.com/peoplecore/backoffice-go/internal/handler/http"
	"github.com/peoplecore/backoffice-go/internal/pkg/database"
	"github.com/peoplecore/backoffice-go/internal/pkg/jwt"
	"github.com/peoplecore/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/backoffice-go/internal/service/attendance"
	authService "github.com/peoplecore/backoffice-go/internal/service/auth"
	employeeService "github.com/peoplecore/backoffice-go/internal/service/employee"
	leaveService "github.com/peoplecore/backoffice-go/internal/service/leave"
	reportService "github.com/peoplecore/backoffice-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(reportRepo, slog.Default())

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

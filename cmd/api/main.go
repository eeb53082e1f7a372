package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/edupay/edupay-backend-go/internal/config"
	appHTTP "github.com/edupay/edupay-backend-go/internal/handler/http"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/edupay/edupay-backend-go/internal/pkg/jwt"
	"github.com/edupay/edupay-backend-go/internal/repository/postgresql"
	payrollService "github.com/edupay/edupay-backend-go/internal/service/payroll"
	profileService "github.com/edupay/edupay-backend-go/internal/service/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "edupay"),
	)

	runRepo := postgresql.NewRunRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	worklogRepo := postgresql.NewWorkLogRepository(db, logger)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	settlementSvc := payrollService.NewSettlementService(runRepo, profileRepo, worklogRepo, cfg.Location(), logger)
	profileSvc := profileService.NewProfileService(profileRepo, cfg.Location())

	payrollHandler := appHTTP.NewPayrollHandler(settlementSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)

	router := appHTTP.NewRouter(jwtService, payrollHandler, profileHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

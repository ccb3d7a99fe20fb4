package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	"github.com/juju/clock"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/handler"
	"github.com/finboard/finboard/internal/integrations/centralbank"
	"github.com/finboard/finboard/internal/middleware"
	"github.com/finboard/finboard/internal/repository"
	"github.com/finboard/finboard/internal/service"
	"github.com/finboard/finboard/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, clock.WallClock, sender)
	h := handler.NewHandler(svc, logger)
	rates := centralbank.NewClient(cfg, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/rates/reference", func(w http.ResponseWriter, r *http.Request) {
		rate, err := rates.GetReferenceRate()
		if err != nil {
			logger.Errorf("Failed to get reference rate: %v", err)
			http.Error(w, "Failed to get reference rate", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"reference_rate": rate})
	}).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))

	authRouter.HandleFunc("/dashboard/summary", h.DashboardSummary).Methods("GET")

	authRouter.HandleFunc("/bankaccounts", h.ListBankAccounts).Methods("GET")
	authRouter.HandleFunc("/bankaccounts", h.CreateBankAccount).Methods("POST")
	authRouter.HandleFunc("/bankaccounts/{id}", h.UpdateBankAccount).Methods("PUT")
	authRouter.HandleFunc("/bankaccounts/{id}", h.DeleteBankAccount).Methods("DELETE")

	authRouter.HandleFunc("/investments", h.ListInvestments).Methods("GET")
	authRouter.HandleFunc("/investments", h.CreateInvestment).Methods("POST")
	authRouter.HandleFunc("/investments/{id}", h.UpdateInvestment).Methods("PUT")
	authRouter.HandleFunc("/investments/{id}", h.DeleteInvestment).Methods("DELETE")

	authRouter.HandleFunc("/fixeddeposits", h.ListFixedDeposits).Methods("GET")
	authRouter.HandleFunc("/fixeddeposits", h.CreateFixedDeposit).Methods("POST")
	authRouter.HandleFunc("/fixeddeposits/{id}", h.UpdateFixedDeposit).Methods("PUT")
	authRouter.HandleFunc("/fixeddeposits/{id}", h.DeleteFixedDeposit).Methods("DELETE")

	authRouter.HandleFunc("/loans", h.ListLoans).Methods("GET")
	authRouter.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	authRouter.HandleFunc("/loans/{id}", h.UpdateLoan).Methods("PUT")
	authRouter.HandleFunc("/loans/{id}", h.DeleteLoan).Methods("DELETE")

	authRouter.HandleFunc("/debts", h.ListDebts).Methods("GET")
	authRouter.HandleFunc("/debts", h.CreateDebt).Methods("POST")
	authRouter.HandleFunc("/debts/{id}", h.UpdateDebt).Methods("PUT")
	authRouter.HandleFunc("/debts/{id}", h.DeleteDebt).Methods("DELETE")

	authRouter.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	authRouter.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	authRouter.HandleFunc("/expenses/{id}", h.UpdateExpense).Methods("PUT")
	authRouter.HandleFunc("/expenses/{id}", h.DeleteExpense).Methods("DELETE")

	authRouter.HandleFunc("/savinggoals", h.ListSavingGoals).Methods("GET")
	authRouter.HandleFunc("/savinggoals", h.CreateSavingGoal).Methods("POST")
	authRouter.HandleFunc("/savinggoals/{id}", h.UpdateSavingGoal).Methods("PUT")
	authRouter.HandleFunc("/savinggoals/{id}", h.DeleteSavingGoal).Methods("DELETE")

	// Schedule EMI reminders
	c := cron.New()
	if _, err := c.AddFunc(cfg.ReminderCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := svc.SendDueLoanReminders(ctx); err != nil {
			logger.Errorf("Loan reminder run failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reminders: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

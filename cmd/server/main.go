package main

import (
	"log/slog"
	"os"

	"stagecraft-crm/config"
	"stagecraft-crm/internal/handlers"
	"stagecraft-crm/internal/routes"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment")
	}

	config.InitAuth()
	config.ConnectDB()
	config.ConnectRedis()
	if err := config.InitGoogleServices(); err != nil {
		slog.Warn("AI research disabled", "error", err)
	}

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Contact{},
		&models.Contractor{},
		&models.Event{},
		&models.EventContractor{},
		&models.EventFile{},
		&models.Task{},
		&models.Meeting{},
		&models.BudgetCategory{},
		&models.BudgetItem{},
		&models.DocumentTemplate{},
		&models.GeneratedDocument{},
		&models.ResearchResult{},
		&models.SourcedVendor{},
		&models.PaymentPlan{},
		&models.PaymentInstallment{},
		&models.VendorPayment{},
	)
	if err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	go handlers.GlobalHub.Run()

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

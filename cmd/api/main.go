package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fenix/internal/config"
	"fenix/internal/database"
	"fenix/internal/middleware"
	"fenix/internal/modules/auth"
	"fenix/internal/modules/dashboard"
	"fenix/internal/modules/employee"
	"fenix/internal/modules/expense"
	"fenix/internal/modules/invoice"
	"fenix/internal/modules/workorder"
	jwtsvc "fenix/internal/pkg/jwt"
	"fenix/internal/repository"
	"fenix/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	store := storage.NewDiskStore(cfg.StorageRoot, cfg.PublicBaseURL)
	if err := store.EnsureBucket(cfg.StorageBucket); err != nil {
		log.Fatal(err)
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(employeeRepo, j, cfg.AdminDNI, cfg.AdminPassword))
	employeeHandler := employee.NewHandler(employee.NewService(employeeRepo))
	workOrderHandler := workorder.NewHandler(workorder.NewService(workOrderRepo, store, cfg.StorageBucket, cfg.PointOfSale))
	invoiceHandler := invoice.NewHandler(invoice.NewService(invoiceRepo, cfg.InvoicePointOfSale), cfg.InvoicePointOfSale)
	expenseHandler := expense.NewHandler(expense.NewService(expenseRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(invoiceRepo, expenseRepo, workOrderRepo))

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	// Uploaded media is served straight from the storage root.
	r.Static("/media", cfg.StorageRoot)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			workOrderHandler.RegisterRoutes(protected)
		}

		// admin only
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			workOrderHandler.RegisterAdminRoutes(admin)
			employeeHandler.RegisterAdminRoutes(admin)
			invoiceHandler.RegisterAdminRoutes(admin)
			expenseHandler.RegisterAdminRoutes(admin)
			dashboardHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

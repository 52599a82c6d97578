package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fenix/internal/config"
	"fenix/internal/database"
	"fenix/internal/domain"
	"fenix/internal/pkg/dates"
	"fenix/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoice_items")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM work_orders")
	db.Exec("DELETE FROM employees")

	ctx := context.Background()
	employees := repository.NewEmployeeRepository(db)
	workOrders := repository.NewWorkOrderRepository(db)
	invoices := repository.NewInvoiceRepository(db)
	expenses := repository.NewExpenseRepository(db)

	// ================== EMPLOYEES ==================
	log.Println("Creating employees...")
	seeded := []domain.Employee{}
	for i, name := range []string{"Juan Perez", "Maria Gomez", "Carlos Diaz"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("empleado123"), bcrypt.DefaultCost)
		e := domain.Employee{
			Name:         name,
			DNI:          fmt.Sprintf("3012345%d", i),
			PasswordHash: string(hash),
		}
		if err := employees.Create(ctx, &e); err != nil {
			log.Fatal("employee seed failed:", err)
		}
		seeded = append(seeded, e)
	}

	// ================== WORK ORDERS ==================
	log.Println("Creating work orders...")
	clients := []struct {
		name  string
		work  string
		delay int
	}{
		{"Roberto Sanchez", "Rectificado de cigüeñal y cambio de cojinetes", 7},
		{"Taller El Rapido", "Rectificación de tapa de cilindros", 3},
		{"Lucia Fernandez", "Encamisado de block y plano de tapa", 1},
		{"Transporte Norte SRL", "Rectificado completo motor 1.9 diesel", 14},
	}
	for i, c := range clients {
		w := domain.WorkOrder{
			ClientName:        c.name,
			Phone:             fmt.Sprintf("381-555-01%02d", i),
			WorkDescription:   c.work,
			DelayDays:         c.delay,
			EstimatedDelivery: dates.Format(dates.AddDays(time.Now(), c.delay)),
			Status:            domain.WorkOrderPending,
			IntakeDate:        time.Now(),
			EmployeeID:        seeded[i%len(seeded)].ID,
		}
		if err := workOrders.Create(ctx, &w, cfg.PointOfSale); err != nil {
			log.Fatal("work order seed failed:", err)
		}
		log.Printf("Work order %s for %s", w.Code, w.ClientName)
	}

	// ================== INVOICES ==================
	log.Println("Creating invoices...")
	inv := domain.Invoice{
		Number:       cfg.InvoicePointOfSale + "-00000001",
		Client:       "Roberto Sanchez",
		ConsumerType: "final",
		Total:        185000,
		CreatedAt:    time.Now(),
		Items: []domain.InvoiceItem{
			{Description: "Rectificado de cigüeñal", Quantity: 1, UnitPrice: 120000},
			{Description: "Juego de cojinetes", Quantity: 1, UnitPrice: 65000},
		},
	}
	if err := invoices.Create(ctx, &inv); err != nil {
		log.Fatal("invoice seed failed:", err)
	}

	// ================== EXPENSES ==================
	log.Println("Creating expenses...")
	for i, e := range []domain.Expense{
		{Description: "Insumos de rectificado", Amount: 45000},
		{Description: "Repuestos proveedor local", Amount: 82000},
		{Description: "Energía eléctrica del taller", Amount: 33000},
	} {
		e.Date = dates.Format(dates.AddDays(time.Now(), -i*3))
		e.CreatedAt = time.Now()
		if err := expenses.Create(ctx, &e); err != nil {
			log.Fatal("expense seed failed:", err)
		}
	}

	log.Println("Seed completed!")
	log.Printf("Admin: %s / (ADMIN_PASSWORD env)", cfg.AdminDNI)
	log.Println("Employees: DNI 30123450..30123452 / empleado123")
}

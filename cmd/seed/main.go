package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"yogastudio/internal/database"
	"yogastudio/internal/domain"
	"yogastudio/internal/modules/settings"
	"yogastudio/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "yogastudio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, t := range []string{
		"payments", "invoice_items", "invoices", "subscriptions",
		"trial_bookings", "members", "leads", "session_slots",
		"membership_plans", "products", "studio_settings", "users",
	} {
		db.Exec("DELETE FROM " + t)
	}

	ctx := context.Background()
	now := time.Now()

	// ================== ADMIN LOGIN ==================
	log.Println("Creating admin user...")
	userRepo := repository.NewUserRepository(db)
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@yogastudio.in",
		PasswordHash: string(adminHash),
		Name:         "Studio Admin",
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@yogastudio.in / admin123")

	// ================== SETTINGS ==================
	log.Println("Creating studio settings...")
	settingsRepo := repository.NewSettingsRepository(db)
	backupRepo := repository.NewBackupRepository(db)
	store := repository.NewAtomicStore(db)
	settingsService := settings.NewService(settingsRepo, backupRepo, store)
	if _, err := settingsService.Load(ctx); err != nil {
		log.Fatal(err)
	}

	// ================== PLANS ==================
	log.Println("Creating membership plans...")
	planRepo := repository.NewPlanRepository(db)
	plans := []*domain.MembershipPlan{
		{Name: "Monthly", Type: domain.PlanMonthly, Price: 2100, DurationMonths: 1, IsActive: true},
		{Name: "Quarterly", Type: domain.PlanQuarterly, Price: 5400, DurationMonths: 3, IsActive: true},
		{Name: "Half Yearly", Type: domain.PlanHalfYearly, Price: 9600, DurationMonths: 6, IsActive: true},
		{Name: "Annual", Type: domain.PlanAnnual, Price: 16800, DurationMonths: 12, IsActive: true},
	}
	for _, p := range plans {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := planRepo.Create(ctx, p); err != nil {
			log.Fatal(err)
		}
	}

	// ================== SLOTS ==================
	log.Println("Creating session slots...")
	slotRepo := repository.NewSlotRepository(db)
	slots := []*domain.SessionSlot{
		{Name: "Morning Batch", StartTime: "06:30", EndTime: "07:30", Capacity: 10, ExceptionCapacity: 1, IsActive: true},
		{Name: "Mid-Morning Batch", StartTime: "09:00", EndTime: "10:00", Capacity: 12, ExceptionCapacity: 2, IsActive: true},
		{Name: "Evening Batch", StartTime: "18:00", EndTime: "19:00", Capacity: 15, ExceptionCapacity: 2, IsActive: true},
	}
	for _, s := range slots {
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := slotRepo.Create(ctx, s); err != nil {
			log.Fatal(err)
		}
	}

	// ================== PRODUCTS ==================
	log.Println("Creating products...")
	productRepo := repository.NewProductRepository(db)
	products := []*domain.Product{
		{Name: "Yoga Mat", SKU: "MAT-001", Price: 800, CurrentStock: 20, LowStockThreshold: 5, IsActive: true},
		{Name: "Yoga Block (pair)", SKU: "BLK-001", Price: 450, CurrentStock: 15, LowStockThreshold: 4, IsActive: true},
		{Name: "Studio T-Shirt", SKU: "TSH-001", Price: 600, CurrentStock: 30, LowStockThreshold: 8, IsActive: true},
	}
	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(ctx, p); err != nil {
			log.Fatal(err)
		}
	}

	// ================== LEADS ==================
	log.Println("Creating sample leads...")
	leadRepo := repository.NewLeadRepository(db)
	leads := []*domain.Lead{
		{Name: "Priya Sharma", Phone: "9812345670", Source: "walk_in", Status: domain.LeadNew},
		{Name: "Ravi Kumar", Phone: "9812345671", Source: "instagram", Status: domain.LeadContacted},
		{Name: "Meena Iyer", Phone: "9812345672", Source: "referral", Status: domain.LeadFollowUp},
	}
	for _, l := range leads {
		l.CreatedAt = now
		l.UpdatedAt = now
		if err := leadRepo.Create(ctx, l); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Login: admin@yogastudio.in / admin123")
}

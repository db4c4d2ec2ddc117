package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"yogastudio/internal/database"
	"yogastudio/internal/modules/auth"
	"yogastudio/internal/modules/billing"
	"yogastudio/internal/modules/inventory"
	"yogastudio/internal/modules/lead"
	"yogastudio/internal/modules/member"
	"yogastudio/internal/modules/plan"
	"yogastudio/internal/modules/settings"
	"yogastudio/internal/modules/slot"
	"yogastudio/internal/modules/subscription"
	"yogastudio/internal/modules/trial"
	jwtsvc "yogastudio/internal/pkg/jwt"
	"yogastudio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	planRepo := repository.NewPlanRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)
	trialRepo := repository.NewTrialRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	backupRepo := repository.NewBackupRepository(db)
	store := repository.NewAtomicStore(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	settingsService := settings.NewService(settingsRepo, backupRepo, store)
	if _, err := settingsService.Load(context.Background()); err != nil {
		log.Fatal(err)
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	memberService := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberService)

	subscriptionService := subscription.NewService(subRepo, planRepo, slotRepo, memberRepo, store)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	leadService := lead.NewService(leadRepo, memberService, subscriptionService)
	leadHandler := lead.NewHandler(leadService)

	slotService := slot.NewService(slotRepo, subRepo)
	slotHandler := slot.NewHandler(slotService)

	planService := plan.NewService(planRepo)
	planHandler := plan.NewHandler(planService)

	billingService := billing.NewService(invoiceRepo, paymentRepo, store, memberRepo, settingsService)
	billingHandler := billing.NewHandler(billingService)

	inventoryService := inventory.NewService(productRepo, store, memberRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	trialService := trial.NewService(trialRepo, slotRepo, leadService)
	trialHandler := trial.NewHandler(trialService)

	settingsHandler := settings.NewHandler(settingsService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			memberHandler.RegisterRoutes(protected)
			leadHandler.RegisterRoutes(protected)
			slotHandler.RegisterRoutes(protected)
			planHandler.RegisterRoutes(protected)
			subscriptionHandler.RegisterRoutes(protected)
			billingHandler.RegisterRoutes(protected)
			inventoryHandler.RegisterRoutes(protected)
			trialHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/audit"
	"github.com/Dmast1/bookingart-api/internal/cache"
	"github.com/Dmast1/bookingart-api/internal/config"
	"github.com/Dmast1/bookingart-api/internal/handlers"
	infraRepo "github.com/Dmast1/bookingart-api/internal/infra/repository"
	"github.com/Dmast1/bookingart-api/internal/middleware"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/notify"
	"github.com/Dmast1/bookingart-api/internal/payments"
	"github.com/Dmast1/bookingart-api/internal/storage"
	ucAvailability "github.com/Dmast1/bookingart-api/internal/usecase/availability"
	ucBooking "github.com/Dmast1/bookingart-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	redisCache := cache.New(cfg)
	mediaStore := storage.NewMediaStore(cfg)
	paymentGateway := payments.New(cfg)
	notifier := notify.New(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	applyRuleUC := ucAvailability.NewApplyRule(
		availabilityRepo,
		auditDispatcher,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		notifier,
	)

	answerBookingUC := ucBooking.NewAnswerBooking(
		bookingRepo,
		auditDispatcher,
		notifier,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	providerHandler := handlers.NewProviderHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(db, applyRuleUC, availabilityRepo, redisCache)
	publicHandler := handlers.NewPublicHandler(db, availabilityRepo, redisCache)

	bookingHandler := handlers.NewBookingHandler(db, bookingRepo, createBookingUC, answerBookingUC, cancelBookingUC)

	eventHandler := handlers.NewEventHandler(db)
	orderHandler := handlers.NewOrderHandler(db, paymentGateway, auditDispatcher)

	chatHandler := handlers.NewChatHandler(db)
	uploadHandler := handlers.NewUploadHandler(db, mediaStore)

	adminHandler := handlers.NewAdminHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/providers", publicHandler.ListProviders)
		api.GET("/providers/:slug", publicHandler.GetProfile)
		api.GET("/providers/:slug/availability", publicHandler.Availability)

		api.GET("/events", eventHandler.ListPublic)
		api.GET("/events/:slug", eventHandler.GetPublic)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", orderHandler.Webhook)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)
			secured.PUT("/me/telegram", meHandler.LinkTelegram)

			// Chat is open to both sides of a thread.
			secured.GET("/chat/conversations", chatHandler.ListConversations)
			secured.POST("/chat/conversations", chatHandler.Open)
			secured.GET("/chat/conversations/:id", chatHandler.GetConversation)
			secured.GET("/chat/conversations/:id/messages", chatHandler.ListMessages)
			secured.POST("/chat/conversations/:id/messages", chatHandler.PostMessage)

			// Ticket orders belong to the logged-in buyer.
			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders", orderHandler.ListMine)

			// Booking requests, client side.
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// PROVIDER AREA
			// ------------------------------
			provider := secured.Group("/")
			provider.Use(middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
			{
				provider.GET("/me/provider", providerHandler.GetMine)
				provider.PUT("/me/provider", providerHandler.UpsertMine)
				provider.POST("/me/provider/cover", uploadHandler.Cover)

				provider.POST("/me/availability", availabilityHandler.Apply)
				provider.GET("/me/availability", availabilityHandler.GetDay)
				provider.GET("/me/availability/calendar", availabilityHandler.Calendar)

				provider.GET("/me/bookings", bookingHandler.ListInbox)
				provider.POST("/me/bookings/:id/accept", bookingHandler.Accept)
				provider.POST("/me/bookings/:id/decline", bookingHandler.Decline)

				provider.GET("/me/events", eventHandler.ListMine)
				provider.POST("/me/events", eventHandler.CreateMine)
				provider.PUT("/me/events/:id", eventHandler.UpdateMine)
				provider.POST("/me/events/:id/publish", eventHandler.PublishMine)
				provider.POST("/me/events/:id/poster", uploadHandler.Poster)
			}

			// ------------------------------
			// ADMIN AREA
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/providers", adminHandler.ListProviders)
				admin.GET("/audit-logs", adminHandler.AuditLogs)
			}
		}
	}
}

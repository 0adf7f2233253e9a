package routes

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barbershop-booking/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucGallery "github.com/BruksfildServices01/barbershop-booking/internal/usecase/gallery"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// Deps reúne o que o processo cria uma vez e os handlers compartilham.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     zerolog.Logger
	Audit   *audit.Dispatcher
	Storage storage.Storage

	// nil desliga o rate limit
	Limiter middleware.Limiter
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {
	cfg := deps.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	store := infraRepo.NewGormStore(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	galleryRepo := infraRepo.NewGalleryGormRepository(deps.DB)

	grid, err := domain.NewSlotGrid(
		cfg.Booking.OpenAt,
		cfg.Booking.CloseAt,
		cfg.Booking.LunchStart,
		cfg.Booking.LunchEnd,
		cfg.Booking.SlotInterval,
	)
	if err != nil {
		return err
	}

	status, err := domain.InitialStatus(cfg.Booking.DefaultStatus)
	if err != nil {
		return err
	}

	clock := timezone.NewClock(cfg.Booking.Timezone)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(store, deps.Audit, deps.Log, status)
	if cfg.Booking.EnforceGrid {
		bookUC.WithSlotGrid(grid)
	}
	availabilityUC := ucAppointment.NewGetAvailability(store, grid)
	todayUC := ucAppointment.NewListToday(store, clock)
	servicesUC := ucAppointment.NewListServices(store)
	byDateUC := ucAppointment.NewListAppointmentsByDate(store, clock)
	allUC := ucAppointment.NewListAllAppointments(store)
	clientsUC := ucAppointment.NewListClients(store)

	var resolver validators.Resolver
	if cfg.Auth.CheckEmailDomain {
		resolver = net.DefaultResolver
	}
	accounts := ucAccount.NewService(userRepo, deps.Audit, resolver)

	gallerySvc := ucGallery.NewService(
		galleryRepo,
		deps.Storage,
		deps.Audit,
		cfg.Gallery.MaxWidth,
		cfg.Gallery.Quality,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(bookUC, availabilityUC, todayUC, servicesUC)
	authHandler := handlers.NewAuthHandler(accounts, cfg.Auth)
	meHandler := handlers.NewMeHandler(accounts)
	appointmentHandler := handlers.NewAppointmentHandler(byDateUC, allUC)
	clientHandler := handlers.NewClientHandler(clientsUC)
	galleryHandler := handlers.NewGalleryHandler(gallerySvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(deps.DB))

	// ======================================================
	// 🩺 INFRA ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	metrics.Register()

	if local, ok := deps.Storage.(*storage.Local); ok {
		r.Static(storage.DefaultLocalBaseURL, local.Dir())
	}

	bookingLimit := middleware.RateLimit(deps.Limiter, "booking", deps.Log)
	loginLimit := middleware.RateLimit(deps.Limiter, "login", deps.Log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/appointments/today", publicHandler.Today)
			publicAPI.POST("/appointments", bookingLimit, publicHandler.CreateAppointment)
			publicAPI.GET("/gallery", galleryHandler.List)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", loginLimit, authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg.Auth))
		{
			secured.GET("", meHandler.GetMe)
			secured.GET("/clients", clientHandler.List)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/all", appointmentHandler.ListAll)
			secured.POST("/gallery", galleryHandler.Upload)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}

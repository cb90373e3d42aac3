package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peopledesk/hr-api/internal/api/handler"
	"github.com/peopledesk/hr-api/internal/api/middleware"
	"github.com/peopledesk/hr-api/internal/core/ports"
	"github.com/peopledesk/hr-api/internal/core/service"
	"github.com/peopledesk/hr-api/internal/infrastructure/config"
	mongodb "github.com/peopledesk/hr-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peopledesk/hr-api/internal/infrastructure/db/redis"
	"github.com/peopledesk/hr-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	otpStore := redisdb.NewOTPStore(rdb)
	avatarStore := storage.NewDiskAvatarStore(cfg.UploadDir)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokenService, otpStore, mailer, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	accountHandler := handler.NewAccountHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, avatarStore)

	auth := middleware.Auth(tokenService)
	admin := middleware.RequireAdmin()

	// --- Account routes ---
	account := e.Group("/api/account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)
	account.GET("/getaccount", accountHandler.GetAccount, auth)
	account.POST("/sendemail", accountHandler.SendEmail)
	account.POST("/changepassword", accountHandler.ChangePassword)

	// --- Employee routes (admin only) ---
	employee := e.Group("/api/employee", auth, admin)
	employee.POST("/create", employeeHandler.Create)
	employee.GET("/", employeeHandler.List)
	employee.PUT("/update/:id", employeeHandler.Update)
	employee.DELETE("/delete/:id", employeeHandler.Delete)

	// --- Avatar files ---
	e.Static("/public/images", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	// The swagger UI reads doc.json from the docs package produced by
	// `swag init`; run it before building, or this route answers 404.
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

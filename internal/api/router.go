package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aman7097/taskie/internal/api/handler"
	"github.com/Aman7097/taskie/internal/api/middleware"
	"github.com/Aman7097/taskie/internal/core/service"
	"github.com/Aman7097/taskie/internal/infrastructure/config"
	taskiemongo "github.com/Aman7097/taskie/internal/infrastructure/db/mongo"
	"github.com/Aman7097/taskie/internal/infrastructure/identity"
	"github.com/Aman7097/taskie/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("taskie"))

	// --- Dependencies ---
	userRepo := taskiemongo.NewUserRepository(db)
	taskRepo := taskiemongo.NewTaskRepository(db)

	avatarStore, err := storage.NewAvatarStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	google := identity.NewGoogleProvider(identity.Config{
		UserInfoURL: cfg.Google.UserInfoURL,
		Timeout:     cfg.Google.Timeout,
	})

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, google, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)
	userService := service.NewUserService(userRepo, avatarStore, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	protected := middleware.Auth(tokens, userRepo)

	// --- Auth routes (register/login/oauth establish identity, no token yet) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/google", authHandler.GoogleLogin)
	e.GET("/auth/me", authHandler.Me, protected)

	// --- Task routes (all ownership-scoped) ---
	tasks := e.Group("/tasks", protected)
	tasks.GET("/getAll", taskHandler.List)
	tasks.POST("/create", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/update/:id", taskHandler.Update)
	tasks.DELETE("/delete/:id", taskHandler.Delete)

	// --- Profile routes ---
	users := e.Group("/users", protected)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.PATCH("/profile/avatar", userHandler.UpdateAvatar)

	// --- Avatars are public static files ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

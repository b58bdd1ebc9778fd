package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"contactform/internal/config"
	"contactform/internal/database"
	"contactform/internal/handlers"
	"contactform/internal/repositories"
	"contactform/internal/services"
	"contactform/pkg/logger"
	"contactform/pkg/rabbitmq"
	"contactform/web"
)

// BuildApp assembles the Fiber app: security middleware, API routes, the
// embedded client form, and the catch-all 404.
func BuildApp(cfg *config.Config, userService *services.UserService) *fiber.App {
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New()) // boundary panics become opaque 500s
	app.Use(requestid.New())
	app.Use(fiberlogger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(cfg.FrontendURL),
		AllowMethods:     "GET, POST, OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	// Fixed-window rate limit per client IP; excess requests are rejected
	// before reaching the submission service.
	app.Use(limiter.New(limiter.Config{
		Max:               cfg.RateLimitMax,
		Expiration:        cfg.RateLimitWindow,
		LimiterMiddleware: limiter.FixedWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests from this IP, please try again later.",
			})
		},
	}))

	// --- API Routes ---
	handlers.NewHealthHandler(cfg.AppEnv).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app)

	// --- Client form ---
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web.Files),
		Index: "index.html",
	}))

	// --- 404 handler ---
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Endpoint not found",
			"availableEndpoints": []string{
				"GET /health",
				"POST /users",
				"GET /users",
			},
		})
	})

	return app
}

// corsOrigins builds the allowed origin list: the local dev ports plus the
// configured frontend origin.
func corsOrigins(frontendURL string) string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURL != "" && !strings.Contains(strings.Join(origins, ","), frontendURL) {
		origins = append(origins, frontendURL)
	}
	return strings.Join(origins, ", ")
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	// --- Database ---
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}
	log.Info().Str("database", cfg.DBName).Msg("connected to database, schema ensured")

	// --- Event publisher (optional) ---
	// The contact form stays usable when the broker is down; submissions
	// simply go unannounced.
	var publisher services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, continuing without event publishing")
	} else {
		publisher = mqClient
	}

	// --- Services and app ---
	userRepo := repositories.NewGORMUserRepository(db)
	userService := services.NewUserService(userRepo, publisher)
	app := BuildApp(cfg, userService)

	// --- Start HTTP server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("environment", cfg.AppEnv).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Orderly drain: stop accepting requests, then release the broker
	// connection and the database pool.
	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Error().Err(err).Msg("error closing RabbitMQ client")
		}
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("error closing database pool")
	}

	log.Info().Msg("server gracefully stopped")
}

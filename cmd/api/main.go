package main

import (
	"strings"
	"time"

	"github.com/admindocentes/backend/auth"
	"github.com/admindocentes/backend/configs"
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/jobs"
	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/payments"
	"github.com/admindocentes/backend/routes"
	"github.com/admindocentes/backend/store"
	ws "github.com/admindocentes/backend/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := newLogger(cfg)

	st := store.New(store.SeedState())

	sessions := auth.NewService(
		auth.NewFileStorage(cfg.SessionFile),
		&auth.SimulatedGoogleProvider{Delay: cfg.FederatedDelay},
		cfg.JWTSecret,
		auth.Delays{Login: cfg.LoginDelay, Logout: cfg.LogoutDelay},
		log,
	)
	if err := sessions.AllowUser(cfg.AdminPassword, models.SessionUser{
		ID:          "1",
		Name:        cfg.AdminName,
		Email:       cfg.AdminEmail,
		Role:        models.RoleAdmin,
		LoginMethod: models.LoginMethodEmail,
		Phone:       "0999999999",
		City:        "Quito",
	}); err != nil {
		log.Fatalf("failed to seed admin credentials: %v", err)
	}
	sessions.Restore()

	hub := ws.NewHub(st, log)
	go hub.Run()

	c := cron.New()
	if _, err := c.AddFunc(cfg.MetricsCron, jobs.MetricsDigest(st, log)); err != nil {
		log.Fatalf("failed to schedule metrics digest: %v", err)
	}
	c.Start()

	app := fiber.New(fiber.Config{
		AppName:       "Admin Docentes",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.WithFields(logrus.Fields{"path": c.Path(), "method": c.Method()}).Error(err)
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Admin Docentes API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.PublicRoutes(app, handlers.NewLocationHandler())
	routes.AuthRoutes(app, handlers.NewAuthHandler(sessions), cfg.JWTSecret)
	routes.TeacherRoutes(app, handlers.NewTeacherHandler(st), cfg.JWTSecret)
	routes.ProposalRoutes(app, handlers.NewProposalHandler(st), cfg.JWTSecret)
	routes.ProfileRoutes(app, handlers.NewProfileHandler(st, &payments.SimulatedProcessor{Delay: cfg.PaymentDelay}, log), cfg.JWTSecret)
	routes.AdminRoutes(app, handlers.NewAdminHandler(st), cfg.JWTSecret)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", hub.Handler())

	log.Infof("server listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

func newLogger(cfg *configs.AppConfig) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if strings.EqualFold(cfg.Environment, "production") {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}
	return log
}

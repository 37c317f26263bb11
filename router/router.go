package router

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"qr-attendance/config"
	"qr-attendance/config/middleware"
	_ "qr-attendance/docs"
	"qr-attendance/handlers"
	"qr-attendance/models"
	"qr-attendance/pkg/metrics"
	"qr-attendance/services"
)

const bodyLimit = 6 * 1024 * 1024

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Config     *config.AppConfig
	Auth       *services.AuthService
	Attendance *services.AttendanceService
	Employees  *services.EmployeeService
	Staff      *services.StaffService
	Metrics    *metrics.Metrics
	// LimiterStorage backs the rate limiter; nil keeps counters in process memory.
	LimiterStorage fiber.Storage
	HealthChecks   map[string]handlers.HealthCheck
	// Quiet disables the access log.
	Quiet bool
}

// NewApp builds the Fiber app with the shared middleware stack and every route registered.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "QR Attendance API",
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if !d.Quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	config.SetupCORS(app, d.Config.AllowedOrigins)
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
	}
	if d.Config.RateLimitPerMin > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        d.Config.RateLimitPerMin,
			Expiration: time.Minute,
			Storage:    d.LimiterStorage,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/healthz" || c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/docs")
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{Msg: "Too many requests", Success: false})
			},
		}))
	}

	SetupRoutes(app, d)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("%s %s: unhandled error: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(models.ErrorResponse{Msg: msg, Success: false})
}

func SetupRoutes(app *fiber.App, d Deps) {
	cfg := d.Config
	m := d.Metrics

	authHandler := handlers.NewAuthHandler(d.Auth, m, cfg.RequestTimeout)
	attendanceHandler := handlers.NewAttendanceHandler(d.Attendance, m, cfg.RequestTimeout)
	userHandler := handlers.NewUserHandler(d.Employees, cfg.UploadDir, cfg.RequestTimeout)
	staffHandler := handlers.NewStaffHandler(d.Staff, cfg.UploadDir, cfg.RequestTimeout)
	healthHandler := handlers.NewHealthHandler(d.HealthChecks, cfg.RequestTimeout)

	authRequired := middleware.AuthMiddleware(d.Auth, m, cfg.RequestTimeout)
	roles := func(allowed models.RoleSet) fiber.Handler {
		return middleware.RequireRoles(m, allowed)
	}

	// Health check, metrics & docs
	app.Get("/", healthHandler.Root)
	app.Get("/healthz", healthHandler.Healthz)
	if m != nil {
		app.Get("/metrics", m.Handler())
	}
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	attendanceGroup := app.Group("/attendance", authRequired)
	attendanceGroup.Post("/mark", roles(models.MarkAttendanceRoles), attendanceHandler.MarkAttendance)
	attendanceGroup.Get("/user/:userId", roles(models.MarkAttendanceRoles), attendanceHandler.GetUserForScan)
	attendanceGroup.Get("/logs", roles(models.ReadLogsRoles), attendanceHandler.GetLogs)
	attendanceGroup.Get("/today", roles(models.TodayRoles), attendanceHandler.GetToday)
	attendanceGroup.Get("/report", roles(models.ReadLogsRoles), attendanceHandler.GetReport)

	usersGroup := app.Group("/users", authRequired)
	usersGroup.Post("/register", roles(models.RegisterUserRoles), userHandler.RegisterUser)
	usersGroup.Get("/users", roles(models.ManageUserRoles), userHandler.GetAllUsers)
	usersGroup.Get("/user/:userId", roles(models.ViewUserRoles), userHandler.GetUser)
	usersGroup.Get("/user/:userId/qr", roles(models.ViewUserRoles), userHandler.GetUserQR)
	usersGroup.Put("/user/:userId/suspend", roles(models.ManageUserRoles), userHandler.SuspendUser)
	usersGroup.Put("/user/:userId/unsuspend", roles(models.ManageUserRoles), userHandler.UnsuspendUser)
	usersGroup.Delete("/user/:userId", roles(models.ManageUserRoles), userHandler.DeleteUser)

	usersGroup.Post("/staff/register", roles(models.AdminOnly), staffHandler.RegisterStaff)
	usersGroup.Get("/staff", roles(models.AdminOnly), staffHandler.GetAllStaff)
	usersGroup.Put("/staff/:staffId/deactivate", roles(models.AdminOnly), staffHandler.DeactivateStaff)
	usersGroup.Put("/staff/:staffId/activate", roles(models.AdminOnly), staffHandler.ActivateStaff)

	log.Println("Routes registered; Swagger documentation at /docs/index.html")
}

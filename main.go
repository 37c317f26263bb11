package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"qr-attendance/config"
	"qr-attendance/handlers"
	"qr-attendance/pkg/metrics"
	"qr-attendance/pkg/paseto"
	"qr-attendance/pkg/redisstore"
	"qr-attendance/pkg/schedule"
	"qr-attendance/repository"
	"qr-attendance/router"
	"qr-attendance/seeder"
	"qr-attendance/services"
)

// @title QR Attendance API
// @version 1.0
// @description Role-based QR-code attendance tracker: operators toggle employees IN/OUT, HR and admins query the logs.
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.basic BasicAuth
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /auth/login.
//
// @tag.name Auth
// @tag.description Staff authentication
//
// @tag.name Attendance
// @tag.description Toggle, logs, today and reports
//
// @tag.name Users
// @tag.description Employee management
//
// @tag.name Staff
// @tag.description Staff accounts (admin only)
//
// @tag.name Health
// @tag.description Liveness and dependency health
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	var (
		employees   repository.EmployeeRepository
		staff       repository.StaffRepository
		counters    repository.CounterRepository
		mongoClient *mongo.Client
	)
	checks := map[string]handlers.HealthCheck{}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Println("Using in-memory store; data is lost on restart")
		employees = repository.NewMemoryEmployeeRepository()
		staff = repository.NewMemoryStaffRepository()
		counters = repository.NewMemoryCounterRepository()
	default:
		mongoClient, err = config.MongoConnect(ctx, cfg.MongoString)
		if err != nil {
			log.Fatalf("MongoDB: %v", err)
		}
		defer config.DisconnectDB(mongoClient)

		db := mongoClient.Database(cfg.MongoDB)
		if err := config.InitDatabase(ctx, db); err != nil {
			log.Fatalf("MongoDB indexes: %v", err)
		}
		employees = repository.NewEmployeeRepository(db)
		staff = repository.NewStaffRepository(db)
		counters = repository.NewCounterRepository(db)
		checks["mongodb"] = func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		}
	}

	var limiterStorage fiber.Storage
	if cfg.RedisAddr != "" {
		store := redisstore.New(cfg.RedisAddr)
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			log.Printf("Warning: redis at %s unreachable: %v", cfg.RedisAddr, err)
		}
		limiterStorage = store
		checks["redis"] = store.Ping
	}

	key, err := cfg.PasetoKey()
	if err != nil {
		log.Fatalf("PASETO key: %v", err)
	}
	tokens, err := paseto.NewPasetoMaker(key, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("PASETO maker: %v", err)
	}

	calendar, err := schedule.NewCalendar(cfg.WorkdayRRule, cfg.Location)
	if err != nil {
		log.Fatalf("Working-day calendar: %v", err)
	}

	authService := services.NewAuthService(staff, tokens)
	attendanceService := services.NewAttendanceService(employees, calendar, cfg.Location)
	employeeService := services.NewEmployeeService(employees, counters, cfg.EmployeeIDBase)
	staffService := services.NewStaffService(staff, counters, cfg.StaffIDBase, cfg.BcryptCost)

	if cfg.SeedAdmin {
		if err := seeder.SeedAdmin(ctx, staffService, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatalf("Seed admin: %v", err)
		}
	}
	if cfg.SeedDemo {
		if err := seeder.SeedDemoEmployees(ctx, employeeService); err != nil {
			log.Fatalf("Seed demo employees: %v", err)
		}
	}

	app := router.NewApp(router.Deps{
		Config:         cfg,
		Auth:           authService,
		Attendance:     attendanceService,
		Employees:      employeeService,
		Staff:          staffService,
		Metrics:        metrics.New(),
		LimiterStorage: limiterStorage,
		HealthChecks:   checks,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/healthz", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.AllowedOrigins)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	util "qr-attendance/pkg/utils"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type AppConfig struct {
	Port            string
	MongoString     string
	MongoDB         string
	StoreBackend    string
	RedisAddr       string
	PasetoSecret    string
	TokenTTL        time.Duration
	BcryptCost      int
	EmployeeIDBase  int64
	StaffIDBase     int64
	Timezone        string
	Location        *time.Location
	UploadDir       string
	RateLimitPerMin int
	RequestTimeout  time.Duration
	WorkdayRRule    string
	AllowedOrigins  []string
	SeedAdmin       bool
	SeedDemo        bool
	AdminUsername   string
	AdminPassword   string
}

// source resolves a key from the environment first, then the optional YAML file.
type source struct {
	file map[string]string
}

// LoadConfig loads .env, then an optional YAML file named by CONFIG_FILE, then the environment.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	src := source{file: map[string]string{}}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &src.file); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg := &AppConfig{
		Port:            src.get("PORT", "3000"),
		MongoString:     src.get("MONGOSTRING", ""),
		MongoDB:         src.get("MONGO_DB", "qr-attendance-db"),
		StoreBackend:    strings.ToLower(src.get("STORE_BACKEND", BackendMongo)),
		RedisAddr:       src.get("REDIS_ADDR", ""),
		PasetoSecret:    src.get("PASETO_SECRET", ""),
		TokenTTL:        src.duration("TOKEN_TTL", 15*time.Minute),
		BcryptCost:      src.int("BCRYPT_COST", 10),
		EmployeeIDBase:  int64(src.int("EMPLOYEE_ID_BASE", 20000)),
		StaffIDBase:     int64(src.int("STAFF_ID_BASE", 10000)),
		Timezone:        src.get("TIMEZONE", "Local"),
		UploadDir:       src.get("UPLOAD_DIR", "./uploads"),
		RateLimitPerMin: src.int("RATE_LIMIT_PER_MIN", 120),
		RequestTimeout:  src.duration("REQUEST_TIMEOUT", 5*time.Second),
		WorkdayRRule:    src.get("WORKDAY_RRULE", "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
		AllowedOrigins:  splitList(src.get("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		SeedAdmin:       src.bool("SEED_ADMIN", false),
		SeedDemo:        src.bool("SEED_DEMO", false),
		AdminUsername:   src.get("ADMIN_USERNAME", "admin1"),
		AdminPassword:   src.get("ADMIN_PASSWORD", ""),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.PasetoSecret == "" {
		key, err := util.GenerateBase64Key(32)
		if err != nil {
			return nil, err
		}
		log.Printf("Warning: PASETO_SECRET not set, generated an ephemeral key; tokens will not survive a restart")
		cfg.PasetoSecret = key
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoString == "" {
			return fmt.Errorf("MONGOSTRING is required when STORE_BACKEND=%s", BackendMongo)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if _, err := c.PasetoKey(); err != nil {
		return err
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.SeedAdmin && c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when SEED_ADMIN=true")
	}
	return nil
}

// PasetoKey decodes PASETO_SECRET, accepting URL or standard base64.
func (c *AppConfig) PasetoKey() ([]byte, error) {
	key, err := base64.URLEncoding.DecodeString(c.PasetoSecret)
	if err != nil {
		key, err = base64.StdEncoding.DecodeString(c.PasetoSecret)
		if err != nil {
			return nil, fmt.Errorf("PASETO_SECRET is not valid base64: %w", err)
		}
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET (decoded) must be exactly 32 bytes long, got %d", len(key))
	}
	return key, nil
}

func (s source) get(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	if value, ok := s.file[key]; ok && value != "" {
		return value
	}
	return fallback
}

func (s source) duration(key string, fallback time.Duration) time.Duration {
	val := s.get(key, "")
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
		return fallback
	}
	return d
}

func (s source) int(key string, fallback int) int {
	val := s.get(key, "")
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
		return fallback
	}
	return n
}

func (s source) bool(key string, fallback bool) bool {
	val := s.get(key, "")
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("invalid bool for %s, using fallback %v", key, fallback)
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string // "production" when GIN_MODE=release
	DBUrl       string
	SQLitePath  string
	FrontendURL string
	// Extra CORS origins on top of FrontendURL
	AllowedOrigins []string
	// Mail transport selection: smtp, resend, emailjs, noop
	MailProvider string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Resend Configuration
	ResendAPIKey    string
	ResendFromEmail string
	// EmailJS Configuration
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailJSEndpoint   string
	// Contact form behaviour
	ContactEmailTo       string
	ContactFallbackEmail string // shown to visitors when delivery fails
	ContactSubmitTimeout time.Duration
	ContactSessionTTL    time.Duration
	ContactMaxSessions   int
	ContactRecordSpam    bool // store honeypot hits in the inbox
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Admin inbox
	AdminJWTSecret string
	// Static site content
	SiteProfilePath string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine outside local development
	_ = godotenv.Load()

	contactTo := getEnv("CONTACT_EMAIL_TO", "")

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    environmentFromGinMode(getEnv("GIN_MODE", "")),
		DBUrl:          getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", ""),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		MailProvider:   strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		// Resend Configuration
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		ResendFromEmail: getEnv("RESEND_FROM_EMAIL", ""),
		// EmailJS Configuration
		EmailJSServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey: getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailJSEndpoint:   getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
		// Contact form behaviour
		ContactEmailTo:       contactTo,
		ContactFallbackEmail: getEnv("CONTACT_FALLBACK_EMAIL", contactTo),
		ContactSubmitTimeout: getEnvDuration("CONTACT_SUBMIT_TIMEOUT", 15*time.Second),
		ContactSessionTTL:    getEnvDuration("CONTACT_SESSION_TTL", 30*time.Minute),
		ContactMaxSessions:   getEnvInt("CONTACT_MAX_SESSIONS", 10000),
		ContactRecordSpam:    getEnvBool("CONTACT_RECORD_SPAM", true),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Admin inbox
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		// Static site content
		SiteProfilePath: getEnv("SITE_PROFILE_PATH", "configs/profile.yaml"),
	}

	if cfg.ContactFallbackEmail == "" {
		log.Println("WARNING: CONTACT_FALLBACK_EMAIL and CONTACT_EMAIL_TO are empty. Contact form cannot offer a direct address.")
	}
	if cfg.DBUrl == "" && cfg.SQLitePath == "" {
		log.Println("WARNING: neither DATABASE_URL nor SQLITE_PATH is set. Contact messages will not be stored.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with GIN_MODE=release.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func environmentFromGinMode(mode string) string {
	if mode == "release" {
		return "production"
	}
	return "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("15s") or a bare number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	EmailProvider   string
	SendGridAPIKey  string
	EmailFrom       string
	AppName         string
	FrontendBaseURL string

	ReminderWindowHours int
	AuditRetentionDays  int
	CORSAllowedOrigins  []string
	RunBackgroundJobs   bool

	// Role sets used by the access rules.
	SuperRoles            = []string{"admin", "root"}
	FormCreatorRoles      = []string{"admin", "root", "manager"}
	ResponseReviewerRoles = []string{"admin", "root", "project_manager"}
	DefaultGrantRoles     = []string{"admin", "manager"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "forms")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "form-platform")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "form-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	EmailProvider = getEnv("EMAIL_PROVIDER", "console")
	SendGridAPIKey = getEnv("SENDGRID_API_KEY", "")
	EmailFrom = getEnv("EMAIL_FROM", "no-reply@localhost")
	AppName = getEnv("APP_NAME", "Form Platform")
	FrontendBaseURL = strings.TrimRight(getEnv("FRONTEND_BASE_URL", "http://localhost:3000"), "/")

	ReminderWindowHours = getEnvInt("REMINDER_WINDOW_HOURS", 24)
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	RunBackgroundJobs, _ = strconv.ParseBool(getEnv("RUN_BACKGROUND_JOBS", "true"))
	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

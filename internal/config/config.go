package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backends de almacenamiento soportados.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// RequiredVars son las variables imprescindibles cuando el backend es Mongo.
// Su ausencia es fatal al arrancar, no un error por petición.
var RequiredVars = []string{"MONGO_URI"}

type Config struct {
	Port         string
	StoreBackend string
	MongoURI     string
	MongoDB      string
	ProbeURL     string

	SMTP SMTPConfig

	LoggerMode string
	LoggerFile string
}

// SMTPConfig configura el notificador de correo. Sin host el notificador
// queda deshabilitado y los envíos son no-ops.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NotifyTo string
}

// Enabled indica si hay servidor de correo configurado.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// Load lee el .env si existe y construye la configuración desde el entorno.
func Load() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", BackendMongo),
		MongoURI:     getEnv("MONGO_URI", ""),
		MongoDB:      getEnv("MONGO_DB", "medisupply"),
		ProbeURL:     getEnv("PROBE_URL", ""),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@medisupply.example"),
			NotifyTo: getEnv("CONTACT_NOTIFY_TO", "admin@medisupply.example"),
		},
		LoggerMode: getEnv("LOG_MODE", "development"),
		LoggerFile: getEnv("LOG_FILE", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendMongo:
		if missing := MissingVars(); len(missing) > 0 {
			return fmt.Errorf("missing required environment variables: %v", missing)
		}
	case BackendMemory:
		// Sin requisitos: todo vive en memoria.
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// MissingVars devuelve las variables requeridas que faltan en el entorno.
func MissingVars() []string {
	var missing []string
	for _, name := range RequiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

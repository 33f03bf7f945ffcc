package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// CategoryClosureDepth bounds how far below a category product
	// listings by slug reach. 1 means direct children only, 0 means all.
	CategoryClosureDepth int

	UploadDir      string
	MaxUploadBytes int64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string
	AMQPURL      string

	OTLPEndpoint string
	CORSOrigins  []string

	AdminEmail    string
	AdminPassword string
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file loaded, using process environment")
	}
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (Config, error) {
	LoadEnv()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:                 v.GetString("PORT"),
		MongoURI:             v.GetString("MONGODB_URI"),
		MongoDatabase:        v.GetString("MONGODB_DATABASE"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		TokenTTL:             v.GetDuration("JWT_TTL"),
		BcryptCost:           v.GetInt("BCRYPT_COST"),
		CategoryClosureDepth: v.GetInt("CATEGORY_CLOSURE_DEPTH"),
		UploadDir:            v.GetString("UPLOAD_DIR"),
		MaxUploadBytes:       v.GetInt64("MAX_UPLOAD_BYTES"),
		RedisAddr:            v.GetString("REDIS_ADDR"),
		RedisPassword:        v.GetString("REDIS_PASSWORD"),
		RedisDB:              v.GetInt("REDIS_DB"),
		CacheTTL:             v.GetDuration("CACHE_TTL"),
		KafkaBrokers:         splitCSV(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:           v.GetString("KAFKA_TOPIC"),
		AMQPURL:              v.GetString("RABBITMQ_URL"),
		OTLPEndpoint:         v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		CORSOrigins:          splitCSV(v.GetString("CORS_ORIGINS")),
		AdminEmail:           v.GetString("ADMIN_EMAIL"),
		AdminPassword:        v.GetString("ADMIN_PASSWORD"),
	}
	return cfg, cfg.validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "sportsmart")
	v.SetDefault("JWT_TTL", "720h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("CATEGORY_CLOSURE_DEPTH", 1)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_BYTES", 1<<20)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "60s")
	v.SetDefault("KAFKA_TOPIC", "sportsmart.catalog")
	v.SetDefault("CORS_ORIGINS", "*")
}

func (c Config) validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.CategoryClosureDepth < 0 {
		errs = append(errs, errors.New("CATEGORY_CLOSURE_DEPTH must not be negative"))
	}
	return errors.Join(errs...)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

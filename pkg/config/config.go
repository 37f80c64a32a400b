package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Model    ModelConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type ModelConfig struct {
	ArtifactPath string
}

// EngineConfig carries the scalar pricing/scoring tunables. Lookup tables
// (volume tiers, region multipliers) stay versioned in code with the
// engine defaults.
type EngineConfig struct {
	UnitRate         float64
	PremiumSurcharge float64
	VIPDiscount      float64
	WModel           float64
	WRule            float64
	TierLowMax       float64
	TierStandardMax  float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pricing AI API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pricing_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Model: ModelConfig{
			ArtifactPath: getEnv("MODEL_ARTIFACT_PATH", "model.json"),
		},
		Engine: EngineConfig{
			UnitRate:         getEnvFloat("ENGINE_UNIT_RATE", 100),
			PremiumSurcharge: getEnvFloat("ENGINE_PREMIUM_SURCHARGE", 1.20),
			VIPDiscount:      getEnvFloat("ENGINE_VIP_DISCOUNT", 0.05),
			WModel:           getEnvFloat("ENGINE_WEIGHT_MODEL", 0.7),
			WRule:            getEnvFloat("ENGINE_WEIGHT_RULE", 0.3),
			TierLowMax:       getEnvFloat("ENGINE_TIER_LOW_MAX", 40),
			TierStandardMax:  getEnvFloat("ENGINE_TIER_STANDARD_MAX", 70),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}

	return parsed
}

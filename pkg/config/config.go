package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Recommend RecommendConfig
	Benchmark BenchmarkConfig
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
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTLSecs  int
}

// RecommendConfig holds the ranking tunables. Env names follow the
// recommendation service conventions (RECS_*).
type RecommendConfig struct {
	TopK            int
	AlphaPrice      float64
	BetaPerf        float64
	PriceJumpLambda float64
	CandidateMargin int
	FreshLimit      int
	FreshWindowDays int
	RecencyGamma    float64
	RecencyHalfLife float64
	ArtifactPath    string
}

type BenchmarkConfig struct {
	UseBenchmark   bool
	ScaleMethod    string // logminmax | minmax
	Domain         string // consumer | all
	CPUTablePath   string
	GPUTablePath   string
	CacheSize      int
	FuzzyEnabled   bool
	FuzzyThreshold float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "LaptopMart Recommendation API"),
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
			Name:     getEnv("DB_NAME", "laptop_mart"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       getEnvBool("REDIS_ENABLED", false),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			CacheTTLSecs:  getEnvInt("REDIS_RECS_CACHE_TTL", 300),
		},
		Recommend: RecommendConfig{
			TopK:            getEnvInt("RECS_TOPK", 10),
			AlphaPrice:      getEnvFloat("RECS_ALPHA_PRICE", 0.6),
			BetaPerf:        getEnvFloat("RECS_BETA_PERF", 0.4),
			PriceJumpLambda: getEnvFloat("RECS_PRICE_JUMP_LAMBDA", 0.6),
			CandidateMargin: getEnvInt("RECS_CANDIDATE_MARGIN", 15),
			FreshLimit:      getEnvInt("RECS_FRESH_LIMIT", 200),
			FreshWindowDays: getEnvInt("RECS_FRESH_WINDOW_DAYS", 60),
			RecencyGamma:    getEnvFloat("RECS_RECENCY_GAMMA", 0.12),
			RecencyHalfLife: getEnvFloat("RECS_RECENCY_HALFLIFE", 21),
			ArtifactPath:    getEnv("RECS_ARTIFACT_PATH", ""),
		},
		Benchmark: BenchmarkConfig{
			UseBenchmark:   getEnvBool("USE_BENCH_IN_API", true),
			ScaleMethod:    getEnv("BENCH_SCALE_METHOD", "logminmax"),
			Domain:         getEnv("BENCH_DOMAIN", "all"),
			CPUTablePath:   getEnv("BENCH_CPU_JSON", "data/cpu_benchmark.json"),
			GPUTablePath:   getEnv("BENCH_GPU_JSON", "data/gpu_benchmark.json"),
			CacheSize:      getEnvInt("BENCH_CACHE_SIZE", 8192),
			FuzzyEnabled:   getEnvBool("BENCH_FUZZY", true),
			FuzzyThreshold: getEnvFloat("BENCH_FUZZY_THRESHOLD", 0.60),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}

	return defaultVal
}

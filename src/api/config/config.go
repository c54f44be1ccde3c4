package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// SourceConfig describes one corroboration source.
type SourceConfig struct {
	APIKey     string
	Weight     float64
	MaxResults int
	Enabled    bool
}

type Config struct {
	MySQLDSN  string
	RedisURL  string
	JWTSecret string
	Port      string
	ModelPath string

	// Evidence sources. NYTimes and Guardian are the Tier-1 pair; the RSS
	// feed is keyless Tier-2; FactCheck activates only with a key.
	NYTimes   SourceConfig
	Guardian  SourceConfig
	NewsRSS   SourceConfig
	FactCheck SourceConfig

	EvidenceTimeout  time.Duration
	EvidenceCacheTTL time.Duration
	ScrapeTimeout    time.Duration

	// Fusion thresholds.
	SimilarityGate     float64
	RealThreshold      float64
	UncertainThreshold float64
	MLBonusThreshold   float64
	MLBonus            float64
	QueryChars         int
	MinTextChars       int

	// Forensic thresholds.
	BlurThreshold   float64
	NoiseThreshold  float64
	MinDimension    int
	BlurPoints      int
	NoisePoints     int
	DimensionPoints int
	FakeThreshold   int
	MinImageBytes   int
	MaxImageBytes   int

	ScanRetentionDays int
	RateLimit         int
	RateWindow        time.Duration
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
	}
	return def
}

func Load() Config {
	return Config{
		MySQLDSN:  getenv("MYSQL_DSN", "veriscan:veriscan@tcp(127.0.0.1:3306)/veriscan?parseTime=true"),
		RedisURL:  getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret: getenv("JWT_SECRET", "dev-only-secret-change-me"),
		Port:      getenv("PORT", "8080"),
		ModelPath: getenv("MODEL_PATH", "model.json"),

		NYTimes: SourceConfig{
			APIKey:     os.Getenv("NYT_API_KEY"),
			Weight:     getenvFloat("NYT_WEIGHT", 0.45),
			MaxResults: getenvInt("NYT_MAX_RESULTS", 3),
			Enabled:    os.Getenv("NYT_API_KEY") != "",
		},
		Guardian: SourceConfig{
			APIKey:     os.Getenv("GUARDIAN_API_KEY"),
			Weight:     getenvFloat("GUARDIAN_WEIGHT", 0.35),
			MaxResults: getenvInt("GUARDIAN_MAX_RESULTS", 3),
			Enabled:    os.Getenv("GUARDIAN_API_KEY") != "",
		},
		NewsRSS: SourceConfig{
			Weight:     getenvFloat("NEWS_RSS_WEIGHT", 0.20),
			MaxResults: getenvInt("NEWS_RSS_MAX_RESULTS", 3),
			Enabled:    getenv("NEWS_RSS_ENABLED", "1") == "1",
		},
		FactCheck: SourceConfig{
			APIKey:     os.Getenv("FACTCHECK_API_KEY"),
			Weight:     getenvFloat("FACTCHECK_WEIGHT", 0.25),
			MaxResults: getenvInt("FACTCHECK_MAX_RESULTS", 3),
			Enabled:    os.Getenv("FACTCHECK_API_KEY") != "",
		},

		EvidenceTimeout:  getenvSeconds("EVIDENCE_TIMEOUT", 6*time.Second),
		EvidenceCacheTTL: getenvSeconds("EVIDENCE_CACHE_TTL", 10*time.Minute),
		ScrapeTimeout:    getenvSeconds("SCRAPE_TIMEOUT", 8*time.Second),

		SimilarityGate:     getenvFloat("SIMILARITY_GATE", 0.25),
		RealThreshold:      getenvFloat("REAL_THRESHOLD", 0.6),
		UncertainThreshold: getenvFloat("UNCERTAIN_THRESHOLD", 0.35),
		MLBonusThreshold:   getenvFloat("ML_BONUS_THRESHOLD", 0.7),
		MLBonus:            getenvFloat("ML_BONUS", 0.2),
		QueryChars:         getenvInt("QUERY_CHARS", 120),
		MinTextChars:       getenvInt("MIN_TEXT_CHARS", 50),

		BlurThreshold:   getenvFloat("BLUR_THRESHOLD", 60),
		NoiseThreshold:  getenvFloat("NOISE_THRESHOLD", 15),
		MinDimension:    getenvInt("MIN_DIMENSION", 256),
		BlurPoints:      getenvInt("BLUR_POINTS", 40),
		NoisePoints:     getenvInt("NOISE_POINTS", 30),
		DimensionPoints: getenvInt("DIMENSION_POINTS", 30),
		FakeThreshold:   getenvInt("FAKE_THRESHOLD", 60),
		MinImageBytes:   getenvInt("MIN_IMAGE_BYTES", 512),
		MaxImageBytes:   getenvInt("MAX_IMAGE_BYTES", 10*1024*1024),

		ScanRetentionDays: getenvInt("SCAN_RETENTION_DAYS", 90),
		RateLimit:         getenvInt("RATE_LIMIT", 30),
		RateWindow:        getenvSeconds("RATE_WINDOW", 60*time.Second),
	}
}

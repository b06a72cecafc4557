package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Settings holds everything the service reads from the environment. Redis
// and Kafka are optional collaborators: empty hosts leave them disabled.
type Settings struct {
	Port        string
	DataDir     string
	DataFile    string
	Debug       bool
	RedisHost   string
	RedisPort   string
	CacheTTL    time.Duration
	KafkaBroker string
	KafkaTopic  string
}

// Load reads the optional .env file and assembles the settings.
func Load() Settings {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return Settings{
		Port:        getEnv("PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "data"),
		DataFile:    getEnv("DATA_FILE", "data/menus.json"),
		Debug:       strings.EqualFold(os.Getenv("DEBUG"), "true"),
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		CacheTTL:    time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "menu-catalog"),
	}
}

func MustInitRedis(settings Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: settings.RedisHost + ":" + settings.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(settings Settings) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(settings.KafkaBroker),
		Topic:    settings.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Service holds the settings every savr service reads at start-up.
type Service struct {
	Name          string
	Addr          string
	Env           string
	PublicBaseURL string
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads an optional .env file and then the service settings from the
// environment. Missing values fall back to the given defaults.
func Load(name, defaultAddr string) Service {
	_ = godotenv.Load()

	return Service{
		Name:          name,
		Addr:          GetString("ADDR", defaultAddr),
		Env:           GetString("ENV", "development"),
		PublicBaseURL: GetString("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func (s Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidConfig)
	}
	idx := strings.LastIndex(s.Addr, ":")
	if idx < 0 {
		return fmt.Errorf("%w: addr %q has no port", ErrInvalidConfig, s.Addr)
	}
	port, err := strconv.Atoi(s.Addr[idx+1:])
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: addr %q has an invalid port", ErrInvalidConfig, s.Addr)
	}
	if s.PublicBaseURL == "" {
		return fmt.Errorf("%w: PUBLIC_BASE_URL is required", ErrInvalidConfig)
	}
	return nil
}

func MustInitPostgres(logger *zap.SugaredLogger) *sql.DB {
	connStr := "host=" + GetString("DB_HOST", "localhost") +
		" port=" + GetString("DB_PORT", "5432") +
		" user=" + GetString("DB_USER", "savr") +
		" password=" + GetString("DB_PASSWORD", "") +
		" dbname=" + GetString("DB_NAME", "savr") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Fatalw("failed to open database", "error", err)
	}

	if err = db.Ping(); err != nil {
		logger.Fatalw("failed to ping database", "error", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(logger *zap.SugaredLogger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetString("REDIS_HOST", "localhost") + ":" + GetString("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: KafkaBrokers(),
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(KafkaBrokers()...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaBrokers splits KAFKA_BROKER on commas.
func KafkaBrokers() []string {
	return GetSlice("KAFKA_BROKER", []string{"localhost:9092"})
}

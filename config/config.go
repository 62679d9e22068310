package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	TopicReservations   = "reservations"
	TopicDeliveryOrders = "delivery-orders"
)

// Load reads a .env file from the working directory when one exists.
// Values already present in the environment win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using process environment")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[config] invalid float for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvInt(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("[config] invalid int for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

type Restaurant struct {
	Lat      float64
	Lng      float64
	Location *time.Location
}

func MustLoadRestaurant() Restaurant {
	tz := GetEnv("RESTAURANT_TZ", "Europe/Helsinki")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatal("Failed to load restaurant time zone:", err)
	}
	return Restaurant{
		Lat:      GetEnvFloat("RESTAURANT_LAT", 62.60242470943839),
		Lng:      GetEnvFloat("RESTAURANT_LNG", 29.762670098205916),
		Location: loc,
	}
}

type Delivery struct {
	BaseFee     float64
	BaseKm      float64
	PerKm       float64
	MaxFee      float64
	MaxRadiusKm float64
}

func LoadDelivery() Delivery {
	return Delivery{
		BaseFee:     GetEnvFloat("DELIVERY_BASE_FEE", 1.99),
		BaseKm:      GetEnvFloat("DELIVERY_BASE_KM", 2.0),
		PerKm:       GetEnvFloat("DELIVERY_PER_KM", 0.99),
		MaxFee:      GetEnvFloat("DELIVERY_MAX_FEE", 8.99),
		MaxRadiusKm: GetEnvFloat("DELIVERY_MAX_RADIUS_KM", 10.0),
	}
}

type Telegram struct {
	Token  string
	ChatID int64
}

func LoadTelegram() Telegram {
	return Telegram{
		Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID: GetEnvInt("TELEGRAM_GROUP_CHAT_ID", 0),
	}
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitSQLX() *sqlx.DB {
	return sqlx.NewDb(MustInitPostgres(), "postgres")
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaGroupReader(groupID string, topics ...string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{os.Getenv("KAFKA_BROKER")},
		GroupID:     groupID,
		GroupTopics: topics,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

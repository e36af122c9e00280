package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config is the process configuration, read from the environment (a local .env
// file is loaded first by godotenv/autoload in cmd/api).
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	APIPrefix string `env:"API_PREFIX" envDefault:"/api"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"dynamodb"`
	AWS         AWS
	Tables      Tables

	Events  Events
	Uploads Uploads

	// WorkOrderResolutionPolicy is "permissive" or "strict".
	WorkOrderResolutionPolicy string   `env:"WORK_ORDER_RESOLUTION_POLICY" envDefault:"permissive"`
	CORSAllowedOrigins        []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// AWS holds the settings shared by the DynamoDB and S3 clients.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// hence the "local" defaults.
type AWS struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	Requests       string `env:"REQUESTS_TABLE" envDefault:"requests"`
	WorkOrders     string `env:"WORKORDERS_TABLE" envDefault:"work_orders"`
	PurchaseOrders string `env:"PURCHASE_ORDERS_TABLE" envDefault:"purchase_orders"`
}

type Events struct {
	KafkaBrokers   []string      `env:"KAFKA_BROKERS" envSeparator:","`
	RequestTopic   string        `env:"REQUEST_TOPIC" envDefault:"request-events"`
	POTopic        string        `env:"PO_TOPIC" envDefault:"po-events"`
	PublishTimeout time.Duration `env:"EVENT_PUBLISH_TIMEOUT" envDefault:"10s"`
	QueueSize      int           `env:"EVENT_QUEUE_SIZE" envDefault:"256"`
}

type Uploads struct {
	Bucket    string        `env:"INSPECTION_BUCKET"`
	Endpoint  string        `env:"S3_ENDPOINT"`
	PathStyle bool          `env:"S3_PATH_STYLE" envDefault:"false"`
	Expiry    time.Duration `env:"UPLOAD_URL_EXPIRY" envDefault:"15m"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.StoreDriver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

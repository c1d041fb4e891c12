package config

import "os"

// RelayConfig holds configuration for the outbox relay service.
// This is a minimal config that only includes what the relay needs.
type RelayConfig struct {
	MongoURI         string
	MongoDatabase    string
	RabbitMQURL      string
	VisitorQueueName string
}

func LoadRelayConfig() *RelayConfig {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		panic("MONGO_URI environment variable is required")
	}

	mongoDatabase := os.Getenv("MONGO_DB_NAME")
	if mongoDatabase == "" {
		mongoDatabase = "hr_backend"
	}

	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL == "" {
		panic("RABBITMQ_URL environment variable is required")
	}

	visitorQueueName := os.Getenv("VISITOR_QUEUE_NAME")
	if visitorQueueName == "" {
		visitorQueueName = "visitors"
	}

	return &RelayConfig{
		MongoURI:         mongoURI,
		MongoDatabase:    mongoDatabase,
		RabbitMQURL:      rabbitURL,
		VisitorQueueName: visitorQueueName,
	}
}

package outbox

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/config"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

const (
	// Event processing configuration
	pollInterval        = 10 * time.Second
	batchProcessTimeout = 60 * time.Second

	// Health check configuration
	healthCheckStaleThreshold = 5 * time.Minute

	// Batch processing limits
	maxEventsPerBatch = 100

	outboxCollection = "outbox_events"
)

// outboxEvent is the stored shape of an entry awaiting publication.
type outboxEvent struct {
	ID        string    `bson:"_id"`
	EventType string    `bson:"eventType"`
	Payload   []byte    `bson:"payload"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Relay drains unprocessed entries from the outbox collection and publishes
// them to RabbitMQ. Mongo has no NOTIFY/LISTEN, so the relay polls; a single
// relay instance is assumed per deployment.
type Relay struct {
	outbox        *mongo.Collection
	publisher     ports.VisitorEventPublisher
	dbCB          *gobreaker.CircuitBreaker
	lastProcessed time.Time
	isHealthy     bool
}

// NewRelay creates a new outbox relay over the given database handle.
func NewRelay(db *mongo.Database, publisher ports.VisitorEventPublisher) *Relay {
	return &Relay{
		outbox:        db.Collection(outboxCollection),
		publisher:     publisher,
		dbCB:          config.NewCircuitBreaker("Relay-MongoDB"),
		lastProcessed: time.Now(),
		isHealthy:     true,
	}
}

// IsHealthy returns true if the relay process is alive and responding.
// This is designed for Liveness probes - keeps checks simple to avoid false
// positives. For Readiness probes use IsReady.
func (r *Relay) IsHealthy() bool {
	return r.isHealthy
}

// IsReady returns true if the relay can process events (for readiness probes).
func (r *Relay) IsReady() bool {
	if r.dbCB.State() == gobreaker.StateOpen {
		return false
	}

	if time.Since(r.lastProcessed) > healthCheckStaleThreshold {
		return false
	}

	return r.isHealthy
}

// Start begins polling the outbox and processing events.
// This is a blocking call that runs until the context is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	log.Printf("outbox relay: polling '%s' every %s...", outboxCollection, pollInterval)

	// Process any unprocessed events on startup (catch-up)
	if err := r.processUnprocessedEvents(ctx); err != nil {
		log.Printf("outbox relay: error processing startup backlog: %v", err)
	} else {
		r.lastProcessed = time.Now()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("outbox relay: shutting down...")
			return ctx.Err()

		case <-ticker.C:
			if err := r.processUnprocessedEvents(ctx); err != nil {
				log.Printf("outbox relay: error processing batch: %v", err)
				r.isHealthy = false
			} else {
				r.lastProcessed = time.Now()
				r.isHealthy = true
			}
		}
	}
}

// processUnprocessedEvents publishes up to maxEventsPerBatch pending events
// in creation order and marks each one processed after a successful publish.
func (r *Relay) processUnprocessedEvents(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, batchProcessTimeout)
	defer cancel()

	_, err := r.dbCB.Execute(func() (interface{}, error) {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: 1}}).
			SetLimit(maxEventsPerBatch)

		cursor, err := r.outbox.Find(ctx, bson.M{"processedAt": nil}, opts)
		if err != nil {
			return nil, err
		}

		var events []outboxEvent
		if err := cursor.All(ctx, &events); err != nil {
			return nil, err
		}

		for _, event := range events {
			if event.EventType == ports.VisitorApprovedEventType {
				var evt ports.VisitorApprovedEvent
				if err := json.Unmarshal(event.Payload, &evt); err != nil {
					log.Printf("outbox relay: invalid payload for event %s: %v", event.ID, err)
					// Mark as processed anyway to avoid infinite retries on bad data
					if err := r.markProcessed(ctx, event.ID); err != nil {
						return nil, err
					}
					continue
				}

				if err := r.publisher.PublishVisitorApproved(ctx, evt); err != nil {
					log.Printf("outbox relay: failed to publish event %s: %v", event.ID, err)
					continue
				}
			}

			if err := r.markProcessed(ctx, event.ID); err != nil {
				return nil, err
			}

			log.Printf("outbox relay: processed event %s", event.ID)
		}

		return nil, nil
	})
	return err
}

func (r *Relay) markProcessed(ctx context.Context, eventID string) error {
	_, err := r.outbox.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$set": bson.M{"processedAt": time.Now().UTC()}},
	)
	return err
}

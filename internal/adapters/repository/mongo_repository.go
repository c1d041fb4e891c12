package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/config"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

const (
	visitorCollection = "visitors"
	outboxCollection  = "outbox_events"
)

// MongoVisitorRepository is the store accessor for visitor records. It owns
// hashing-on-write for the password field: plaintext never reaches the
// collection.
type MongoVisitorRepository struct {
	visitors *mongo.Collection
	outbox   *mongo.Collection
	cb       *gobreaker.CircuitBreaker
}

// Ensure MongoVisitorRepository implements ports.VisitorRepository
var _ ports.VisitorRepository = (*MongoVisitorRepository)(nil)

func NewMongoVisitorRepository(db *mongo.Database) *MongoVisitorRepository {
	return &MongoVisitorRepository{
		visitors: db.Collection(visitorCollection),
		outbox:   db.Collection(outboxCollection),
		cb:       config.NewCircuitBreaker("MongoDB"),
	}
}

func (r *MongoVisitorRepository) Insert(ctx context.Context, visitor domain.Visitor) (*domain.Visitor, error) {
	visitor.ID = primitive.NewObjectID()
	visitor.CreatedAt = time.Now().UTC()

	_, err := r.cb.Execute(func() (interface{}, error) {
		return r.visitors.InsertOne(ctx, visitor)
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (r *MongoVisitorRepository) FindByID(ctx context.Context, id string) (*domain.Visitor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	result, err := r.cb.Execute(func() (interface{}, error) {
		var visitor domain.Visitor
		if err := r.visitors.FindOne(ctx, bson.M{"_id": oid}).Decode(&visitor); err != nil {
			return nil, err
		}
		return &visitor, nil
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return result.(*domain.Visitor), nil
}

type filteredResult struct {
	records []domain.Visitor
	total   int64
}

func (r *MongoVisitorRepository) FindFiltered(ctx context.Context, filter ports.ListFilter, page ports.Pagination) ([]domain.Visitor, int64, error) {
	query := buildFilter(filter)

	result, err := r.cb.Execute(func() (interface{}, error) {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(page.Skip()).
			SetLimit(page.Limit)

		cursor, err := r.visitors.Find(ctx, query, opts)
		if err != nil {
			return nil, err
		}

		var records []domain.Visitor
		if err := cursor.All(ctx, &records); err != nil {
			return nil, err
		}

		total, err := r.visitors.CountDocuments(ctx, query)
		if err != nil {
			return nil, err
		}

		return filteredResult{records: records, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	fr := result.(filteredResult)
	return fr.records, fr.total, nil
}

func (r *MongoVisitorRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, password string) (*domain.Visitor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"status": status}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["password"] = string(hashed)
	}

	result, err := r.cb.Execute(func() (interface{}, error) {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		var visitor domain.Visitor
		err := r.visitors.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&visitor)
		if err != nil {
			return nil, err
		}
		return &visitor, nil
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return result.(*domain.Visitor), nil
}

func (r *MongoVisitorRepository) AppendOutboxEvent(ctx context.Context, eventType string, payload []byte) error {
	doc := bson.M{
		"_id":         uuid.NewString(),
		"eventType":   eventType,
		"payload":     payload,
		"createdAt":   time.Now().UTC(),
		"processedAt": nil,
	}

	_, err := r.cb.Execute(func() (interface{}, error) {
		return r.outbox.InsertOne(ctx, doc)
	})
	return err
}

// buildFilter translates the predicate conjunction into a Mongo query.
// Search is quoted so it matches as a literal substring, not a pattern.
func buildFilter(filter ports.ListFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"fullName": pattern},
			bson.M{"phone": pattern},
			bson.M{"email": pattern},
		}
	}
	return query
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/config"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

const employeeCollection = "employees"

type MongoEmployeeRepository struct {
	employees *mongo.Collection
	cb        *gobreaker.CircuitBreaker
}

var _ ports.EmployeeRepository = (*MongoEmployeeRepository)(nil)

func NewMongoEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{
		employees: db.Collection(employeeCollection),
		cb:        config.NewCircuitBreaker("MongoDB"),
	}
}

func (r *MongoEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		var employee domain.Employee
		if err := r.employees.FindOne(ctx, bson.M{"email": email}).Decode(&employee); err != nil {
			return nil, err
		}
		return &employee, nil
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return result.(*domain.Employee), nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = time.Now().UTC()

	_, err := r.cb.Execute(func() (interface{}, error) {
		return r.employees.InsertOne(ctx, employee)
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

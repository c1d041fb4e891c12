package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/adapters/repository"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
)

// Fixed administrative account provisioned once per deployment. The login
// flow has no registration path, so this is the only way an HR account
// comes into existence.
const (
	adminName     = "System Admin"
	adminEmail    = "hr.company@gmail.com"
	adminPassword = "Hr@#12345"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Println("Admin seed failed: MONGO_URI environment variable is required")
		os.Exit(1)
	}

	mongoDatabase := os.Getenv("MONGO_DB_NAME")
	if mongoDatabase == "" {
		mongoDatabase = "hr_backend"
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Printf("Admin seed failed: %v", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	employeeRepo := repository.NewMongoEmployeeRepository(client.Database(mongoDatabase))

	_, err = employeeRepo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin already exists")
		os.Exit(0)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		log.Printf("Admin seed failed: %v", err)
		os.Exit(1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Admin seed failed: %v", err)
		os.Exit(1)
	}

	_, err = employeeRepo.Create(ctx, domain.Employee{
		Name:          adminName,
		Email:         adminEmail,
		Password:      string(hashed),
		Role:          domain.RoleHR,
		Status:        domain.StatusApproved,
		IsActive:      true,
		EmailVerified: true,
	})
	if err != nil {
		log.Printf("Admin seed failed: %v", err)
		os.Exit(1)
	}

	log.Println("Admin created successfully")
}

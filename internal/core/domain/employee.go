package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is an HR staff account. The only write path in this service is
// the one-shot seed binary; the login flow reads it.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	Role          string             `bson:"role" json:"role"`
	Status        Status             `bson:"status" json:"status"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	EmailVerified bool               `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

const RoleHR = "hr"

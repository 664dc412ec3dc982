package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values understood by clients. Nothing in this service enforces them.
const (
	RoleTestTaker = "test_taker"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"` // "test_taker", "manager", "admin"
	AvatarURL *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
}

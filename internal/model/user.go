package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles: "super" | "admin" | "vendedor"
const (
	RoleSuper    = "super"
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User stores system accounts with role-based access.
// PasswordHash is bcrypt and is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	IsOnline     bool               `bson:"isOnline" json:"isOnline"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

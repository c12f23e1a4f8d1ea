package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the document stored in the users collection. The same shape
// binds registration bodies, so Password carries the plaintext on the
// way in and the bcrypt hash once persisted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string             `bson:"username" json:"username" binding:"required"`
	Email     string             `bson:"email" json:"email" binding:"required,email"`
	Password  string             `bson:"password" json:"password" binding:"required,min=6"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// LoginRequest carries the credentials for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Claims defines the structure of the JWT claims: the subject holds
// the user id, the expiry is seven days from issuance. Nothing beyond
// the registered claims is carried.
type Claims struct {
	jwt.RegisteredClaims
}

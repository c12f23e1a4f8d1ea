package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is the document stored in the blogs collection and the bound
// body for create/update requests. ID and CreatedAt are assigned on
// creation and immutable afterwards.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title" binding:"required"`
	Content   string             `bson:"content" json:"content" binding:"required,min=5"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// BlogListQuery binds GET /blogs query parameters. Page is 1-based;
// limit and page are mandatory, the free-text title query is not.
type BlogListQuery struct {
	Q     string `form:"q"`
	Limit int64  `form:"limit" binding:"required"`
	Page  int64  `form:"page" binding:"required"`
}

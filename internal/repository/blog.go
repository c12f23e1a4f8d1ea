package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"blogapi/internal/models"
)

type BlogRepository interface {
	Insert(ctx context.Context, blog *models.Blog) error
	UpdateContent(ctx context.Context, id primitive.ObjectID, title, content string) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	List(ctx context.Context, q string, limit, page int64) ([]models.Blog, error)
	EnsureTitleIndex(ctx context.Context) error
}

type blogRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewBlogRepository(db *mongo.Database, logger *zap.Logger) BlogRepository {
	return &blogRepository{col: db.Collection("blogs"), logger: logger}
}

func (r *blogRepository) Insert(ctx context.Context, blog *models.Blog) error {
	_, err := r.col.InsertOne(ctx, blog)
	return err
}

// UpdateContent sets title and content only; _id and created_at are
// never touched after creation.
func (r *blogRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, title, content string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "content": content}},
	)
	return err
}

func (r *blogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // post not found
		}
		return nil, err
	}
	return &blog, nil
}

// List returns one page of posts, newest first. A non-empty q becomes
// a regex match on title with options "x", as in the API this backend
// replaces.
func (r *blogRepository) List(ctx context.Context, q string, limit, page int64) ([]models.Blog, error) {
	filter := bson.M{}
	if q != "" {
		filter["title"] = primitive.Regex{Pattern: q, Options: "x"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// EnsureTitleIndex creates the ascending index on title. CreateOne is
// idempotent, so this runs on every start.
func (r *blogRepository) EnsureTitleIndex(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	return err
}

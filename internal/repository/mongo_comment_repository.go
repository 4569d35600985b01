package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"declutter/internal/model"
)

type mongoCommentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository builds a MongoDB-backed comment repository.
func NewMongoCommentRepository(db *mongo.Database) CommentRepository {
	return &mongoCommentRepository{coll: db.Collection(commentsCollection)}
}

func (r *mongoCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = model.NewID()
	}
	_, err := r.coll.InsertOne(ctx, comment)
	return translate(err)
}

func (r *mongoCommentRepository) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	comments := []model.Comment{}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if err := findAll(ctx, r.coll, bson.M{"postId": postID}, &comments, opts); err != nil {
		return nil, err
	}
	return comments, nil
}

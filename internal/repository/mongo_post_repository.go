package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"declutter/internal/model"
)

type mongoPostRepository struct {
	coll *mongo.Collection
}

// NewMongoPostRepository builds a MongoDB-backed post repository.
func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{coll: db.Collection(postsCollection)}
}

func (r *mongoPostRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = model.NewID()
	}
	if err := post.Validate(); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, post)
	return translate(err)
}

func (r *mongoPostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *mongoPostRepository) ListByEmail(ctx context.Context, email string) ([]model.Post, error) {
	posts := []model.Post{}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{"email": email}, &posts, opts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *mongoPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

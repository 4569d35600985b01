package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"declutter/internal/model"
)

type mongoNotificationRepository struct {
	coll  *mongo.Collection
	posts *mongo.Collection
}

// NewMongoNotificationRepository builds a MongoDB-backed notification repository.
func NewMongoNotificationRepository(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepository{
		coll:  db.Collection(notificationsCollection),
		posts: db.Collection(postsCollection),
	}
}

func (r *mongoNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = model.NewID()
	}
	_, err := r.coll.InsertOne(ctx, notification)
	return translate(err)
}

func (r *mongoNotificationRepository) ListByRecipient(ctx context.Context, email string) ([]model.Notification, error) {
	notifications := []model.Notification{}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{"toEmail": email}, &notifications, opts); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		if n.PostID != "" {
			ids = append(ids, n.PostID)
		}
	}
	if len(ids) == 0 {
		return notifications, nil
	}

	var posts []model.Post
	if err := findAll(ctx, r.posts, bson.M{"_id": bson.M{"$in": ids}}, &posts); err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Post, len(posts))
	for i := range posts {
		byID[posts[i].ID] = &posts[i]
	}
	for i := range notifications {
		notifications[i].Post = byID[notifications[i].PostID]
	}
	return notifications, nil
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"declutter/internal/auth"
	"declutter/internal/config"
	"declutter/internal/db"
	apperrors "declutter/internal/errors"
	"declutter/internal/service"
)

// demoPassword is shared by every seeded account.
const demoPassword = "password123"

// placeholderImage is a 1x1 transparent PNG.
const placeholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

type seedPost struct {
	owner string
	input service.PostInput
}

type seedComment struct {
	author    string
	postIndex int
	text      string
}

var (
	seedUsers = []string{"alice@example.com", "bob@example.com"}

	seedPosts = []seedPost{
		{owner: "alice@example.com", input: service.PostInput{Name: "Desk lamp", Image: placeholderImage, Reason: "Bought a new one", Category: "unused"}},
		{owner: "alice@example.com", input: service.PostInput{Name: "Guitar", Image: placeholderImage, Reason: "Never practice anymore", Category: "bored"}},
		{owner: "bob@example.com", input: service.PostInput{Name: "Toaster", Image: placeholderImage, Reason: "Only heats one side", Category: "broken"}},
	}

	seedComments = []seedComment{
		{author: "bob@example.com", postIndex: 1, text: "Is it still available?"},
		{author: "alice@example.com", postIndex: 2, text: "Could be fixable"},
	}
)

func main() {
	cfg := config.Load()
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	logger.Info("Starting seed script...")
	ctx := context.Background()

	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open store")
	}
	defer func() { _ = store.Close(context.Background()) }()

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	notifier := service.NewNotifier(store.Posts, store.Notifications, logger)
	authService := service.NewAuthService(store.Users, jwtService)
	postService := service.NewPostService(store.Posts)
	commentService := service.NewCommentService(store.Comments, notifier)

	created, existing, err := seedAccounts(ctx, authService, seedUsers)
	if err != nil {
		logger.WithError(err).Fatal("Failed to seed users")
	}

	postIDs := make([]string, 0, len(seedPosts))
	for _, p := range seedPosts {
		post, err := postService.Create(ctx, p.owner, p.input)
		if err != nil {
			logger.WithError(err).Fatalf("Failed to seed post %q", p.input.Name)
		}
		postIDs = append(postIDs, post.ID)
	}

	for _, c := range seedComments {
		if _, err := commentService.Create(ctx, c.author, postIDs[c.postIndex], c.text); err != nil {
			logger.WithError(err).Fatal("Failed to seed comment")
		}
	}
	notifier.Close()

	logger.WithFields(logrus.Fields{
		"users_created":  created,
		"users_existing": existing,
		"posts":          len(postIDs),
		"comments":       len(seedComments),
	}).Info("Seed completed successfully!")
	logger.Infof("Every demo account uses the password %q", demoPassword)
}

// seedAccounts registers each email, counting the ones that already exist.
func seedAccounts(ctx context.Context, authService service.AuthService, emails []string) (created int, existing int, err error) {
	for _, email := range emails {
		_, err := authService.Register(ctx, email, demoPassword)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrConflict):
			existing++
		default:
			return created, existing, fmt.Errorf("error registering %s: %w", email, err)
		}
	}
	return created, existing, nil
}

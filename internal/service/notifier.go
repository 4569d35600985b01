package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"declutter/internal/model"
	"declutter/internal/repository"
)

const (
	notifierQueueSize  = 100
	notifierJobTimeout = 10 * time.Second
)

type commentEvent struct {
	postID    string
	commenter string
	at        time.Time
}

// Notifier raises a notification for the post owner whenever someone else
// comments. It runs after the comment is stored and never reports failure to
// the commenter: a missing post or a store error only gets logged.
type Notifier struct {
	posts         repository.PostRepository
	notifications repository.NotificationRepository
	logger        logrus.FieldLogger

	mu     sync.RWMutex
	closed bool
	events chan commentEvent
	done   chan struct{}
}

// NewNotifier starts the background worker. Call Close to drain it.
func NewNotifier(posts repository.PostRepository, notifications repository.NotificationRepository, logger logrus.FieldLogger) *Notifier {
	n := &Notifier{
		posts:         posts,
		notifications: notifications,
		logger:        logger.WithField("component", "notifier"),
		events:        make(chan commentEvent, notifierQueueSize),
		done:          make(chan struct{}),
	}
	go n.worker()
	return n
}

// CommentAdded queues the notification step for a new comment.
func (n *Notifier) CommentAdded(postID, commenter string, at time.Time) {
	ev := commentEvent{postID: postID, commenter: commenter, at: at}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.handle(ev)
		return
	}

	select {
	case n.events <- ev:
	default:
		// queue full, handle synchronously as fallback
		n.handle(ev)
	}
}

// Close stops accepting work and waits for queued events to be handled.
func (n *Notifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.events)
	}
	n.mu.Unlock()
	<-n.done
}

func (n *Notifier) worker() {
	defer close(n.done)
	for ev := range n.events {
		n.handle(ev)
	}
}

func (n *Notifier) handle(ev commentEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), notifierJobTimeout)
	defer cancel()

	log := n.logger.WithFields(logrus.Fields{"post_id": ev.postID, "from": ev.commenter})

	post, err := n.posts.FindByID(ctx, ev.postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Debug("post gone, skipping comment notification")
			return
		}
		log.WithError(err).Warn("lookup post for comment notification")
		return
	}
	if post.Email == ev.commenter {
		return
	}

	notification := &model.Notification{
		ToEmail:   post.Email,
		Type:      model.NotificationTypeComment,
		PostID:    post.ID,
		FromEmail: ev.commenter,
		CreatedAt: ev.at,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		log.WithError(err).Warn("create comment notification")
	}
}

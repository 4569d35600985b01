package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"declutter/internal/model"
)

func TestCommentHandler_ListIsPublic(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("List", mock.Anything, "p1").Return([]model.Comment{
		{ID: "c1", PostID: "p1", Text: "still available?", Email: "bob@example.com"},
		{ID: "c2", PostID: "p1", Text: "yes", Email: "alice@example.com"},
	}, nil)
	e, _ := newTestEcho()
	e.GET("/posts/:id/comments", NewCommentHandler(svc).List)

	rec := do(e, http.MethodGet, "/posts/p1/comments", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var comments []model.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].ID)
}

func TestCommentHandler_Create(t *testing.T) {
	svc := new(MockCommentService)
	stored := &model.Comment{ID: "c1", PostID: "p1", Text: "nice", Email: "bob@example.com", CreatedAt: time.Now()}
	svc.On("Create", mock.Anything, "bob@example.com", "p1", "nice").Return(stored, nil)
	e, requireAuth := newTestEcho()
	e.POST("/posts/:id/comments", NewCommentHandler(svc).Create, requireAuth)

	rec := do(e, http.MethodPost, "/posts/p1/comments", `{"text":"nice"}`, tokenFor(t, "bob@example.com"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Message string        `json:"message"`
		Comment model.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "comment saved", resp.Message)
	assert.Equal(t, "bob@example.com", resp.Comment.Email)
	svc.AssertExpectations(t)
}

func TestCommentHandler_CreateEmptyText(t *testing.T) {
	svc := new(MockCommentService)
	e, requireAuth := newTestEcho()
	e.POST("/posts/:id/comments", NewCommentHandler(svc).Create, requireAuth)

	rec := do(e, http.MethodPost, "/posts/p1/comments", `{"text":""}`, tokenFor(t, "bob@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_CreateWithBadToken(t *testing.T) {
	svc := new(MockCommentService)
	e, requireAuth := newTestEcho()
	e.POST("/posts/:id/comments", NewCommentHandler(svc).Create, requireAuth)

	rec := do(e, http.MethodPost, "/posts/p1/comments", `{"text":"nice"}`, "not-a-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec).Code)
}

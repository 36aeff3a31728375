package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
)

func TestCreateReplyHandler(t *testing.T) {
	h := &Handler{}

	router := mux.NewRouter()
	router.HandleFunc("/threads/{thread_id}/comments/{comment_id}/replies", h.CreateReply).Methods("POST")
	route := "/threads/thread-abc/comments/comment-1/replies"
	requestBody := []byte(`{"content": "a reply"}`)

	t.Run("successful request", func(t *testing.T) {
		h.reply = &MockReplyService{
			MockCreate: func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error) {
				assert.Equal(t, domain.ThreadId("thread-abc"), threadId)
				assert.Equal(t, domain.CommentId("comment-1"), commentId)
				return domain.CreatedReply{Id: "reply-1", Content: "a reply", Owner: "user-123"}, nil
			},
		}
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(requestBody)), testUser)

		rr := serve(router, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "addedReply")
	})

	t.Run("no user claims", func(t *testing.T) {
		h.reply = &MockReplyService{}
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(requestBody))

		rr := serve(router, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("comment not found", func(t *testing.T) {
		h.reply = &MockReplyService{
			MockCreate: func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error) {
				return domain.CreatedReply{}, &errors.NotFoundError{Message: "comment not found"}
			},
		}
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(requestBody)), testUser)

		rr := serve(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteReplyHandler(t *testing.T) {
	h := &Handler{}

	router := mux.NewRouter()
	router.HandleFunc("/threads/{thread_id}/comments/{comment_id}/replies/{reply_id}", h.DeleteReply).Methods("DELETE")
	route := "/threads/thread-abc/comments/comment-1/replies/reply-1"

	t.Run("successful request", func(t *testing.T) {
		h.reply = &MockReplyService{
			MockDelete: func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
				assert.Equal(t, domain.ReplyId("reply-1"), replyId)
				return nil
			},
		}
		req := withUser(httptest.NewRequest(http.MethodDelete, route, nil), testUser)

		rr := serve(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not the owner", func(t *testing.T) {
		h.reply = &MockReplyService{
			MockDelete: func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
				return &errors.AuthorizationError{Message: "you are not allowed to access this resource"}
			},
		}
		req := withUser(httptest.NewRequest(http.MethodDelete, route, nil), testUser)

		rr := serve(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

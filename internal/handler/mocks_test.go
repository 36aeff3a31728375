package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/service"
)

type MockThreadService struct {
	MockCreate     func(ownerId domain.UserId, payload domain.NewThreadPayload) (domain.CreatedThread, error)
	MockGetDetails func(threadId domain.ThreadId) (domain.DetailThread, error)
}

func (m *MockThreadService) Create(ownerId domain.UserId, payload domain.NewThreadPayload) (domain.CreatedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ownerId, payload)
	}
	return domain.CreatedThread{}, nil // Default behavior
}

func (m *MockThreadService) GetDetails(threadId domain.ThreadId) (domain.DetailThread, error) {
	if m.MockGetDetails != nil {
		return m.MockGetDetails(threadId)
	}
	return domain.DetailThread{}, nil // Default behavior
}

type MockCommentService struct {
	MockCreate     func(ownerId domain.UserId, threadId domain.ThreadId, payload domain.NewCommentPayload) (domain.CreatedComment, error)
	MockDelete     func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
	MockToggleLike func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
}

func (m *MockCommentService) Create(ownerId domain.UserId, threadId domain.ThreadId, payload domain.NewCommentPayload) (domain.CreatedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ownerId, threadId, payload)
	}
	return domain.CreatedComment{}, nil
}

func (m *MockCommentService) Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ownerId, threadId, commentId)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if m.MockToggleLike != nil {
		return m.MockToggleLike(ownerId, threadId, commentId)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error)
	MockDelete func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

func (m *MockReplyService) Create(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ownerId, threadId, commentId, payload)
	}
	return domain.CreatedReply{}, nil
}

func (m *MockReplyService) Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ownerId, threadId, commentId, replyId)
	}
	return nil
}

type MockAuthService struct {
	MockRegister           func(username, password, fullname string) (domain.User, error)
	MockLogin              func(username, password string) (service.TokenPair, error)
	MockRefreshAccessToken func(refreshToken string) (string, error)
	MockLogout             func(refreshToken string) error
}

func (m *MockAuthService) Register(username, password, fullname string) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(username, password, fullname)
	}
	return domain.User{}, nil
}

func (m *MockAuthService) Login(username, password string) (service.TokenPair, error) {
	if m.MockLogin != nil {
		return m.MockLogin(username, password)
	}
	return service.TokenPair{}, nil
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	if m.MockRefreshAccessToken != nil {
		return m.MockRefreshAccessToken(refreshToken)
	}
	return "", nil
}

func (m *MockAuthService) Logout(refreshToken string) error {
	if m.MockLogout != nil {
		return m.MockLogout(refreshToken)
	}
	return nil
}

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// withUser attaches user claims to the request the way the auth
// middleware does after a successful token check.
func withUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserClaimsKey, user)
	return r.WithContext(ctx)
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

package service

import (
	"github.com/threadhub-dev/threadhub/internal/domain"
)

// --- Mocks (func-field pattern, nil fields mean default success) ---

type MockThreadRepository struct {
	addThreadFunc          func(ownerId domain.UserId, thread domain.NewThread) (domain.CreatedThread, error)
	verifyThreadExistsFunc func(threadId domain.ThreadId) error
	getThreadDetailsFunc   func(threadId domain.ThreadId) (domain.DetailThread, error)
}

func (m *MockThreadRepository) AddThread(ownerId domain.UserId, thread domain.NewThread) (domain.CreatedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(ownerId, thread)
	}
	return domain.CreatedThread{Id: "thread-123", Title: thread.Title, Owner: ownerId}, nil
}

func (m *MockThreadRepository) VerifyThreadExists(threadId domain.ThreadId) error {
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(threadId)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadDetails(threadId domain.ThreadId) (domain.DetailThread, error) {
	if m.getThreadDetailsFunc != nil {
		return m.getThreadDetailsFunc(threadId)
	}
	return domain.DetailThread{Id: threadId}, nil
}

type MockCommentRepository struct {
	addCommentFunc          func(ownerId domain.UserId, threadId domain.ThreadId, comment domain.NewComment) (domain.CreatedComment, error)
	verifyCommentExistsFunc func(commentId domain.CommentId) error
	verifyCommentOwnerFunc  func(commentId domain.CommentId, ownerId domain.UserId) error
	getCommentDetailsFunc   func(threadId domain.ThreadId) ([]domain.DetailComment, error)
	deleteCommentByIdFunc   func(commentId domain.CommentId, ownerId domain.UserId) error
	addLikeFunc             func(commentId domain.CommentId, ownerId domain.UserId) error
	deleteLikeFunc          func(commentId domain.CommentId, ownerId domain.UserId) error
	isLikedFunc             func(commentId domain.CommentId, ownerId domain.UserId) (bool, error)
	getCommentLikesFunc     func(commentId domain.CommentId) (int, error)
}

func (m *MockCommentRepository) AddComment(ownerId domain.UserId, threadId domain.ThreadId, comment domain.NewComment) (domain.CreatedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ownerId, threadId, comment)
	}
	return domain.CreatedComment{Id: "comment-123", Content: comment.Content, Owner: ownerId}, nil
}

func (m *MockCommentRepository) VerifyCommentExists(commentId domain.CommentId) error {
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(commentId domain.CommentId, ownerId domain.UserId) error {
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, ownerId)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentDetails(threadId domain.ThreadId) ([]domain.DetailComment, error) {
	if m.getCommentDetailsFunc != nil {
		return m.getCommentDetailsFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteCommentById(commentId domain.CommentId, ownerId domain.UserId) error {
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(commentId, ownerId)
	}
	return nil
}

func (m *MockCommentRepository) AddLike(commentId domain.CommentId, ownerId domain.UserId) error {
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, ownerId)
	}
	return nil
}

func (m *MockCommentRepository) DeleteLike(commentId domain.CommentId, ownerId domain.UserId) error {
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(commentId, ownerId)
	}
	return nil
}

func (m *MockCommentRepository) IsLiked(commentId domain.CommentId, ownerId domain.UserId) (bool, error) {
	if m.isLikedFunc != nil {
		return m.isLikedFunc(commentId, ownerId)
	}
	return false, nil
}

func (m *MockCommentRepository) GetCommentLikes(commentId domain.CommentId) (int, error) {
	if m.getCommentLikesFunc != nil {
		return m.getCommentLikesFunc(commentId)
	}
	return 0, nil
}

type MockReplyRepository struct {
	addReplyFunc          func(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, reply domain.NewReply) (domain.CreatedReply, error)
	verifyReplyExistsFunc func(replyId domain.ReplyId) error
	verifyReplyOwnerFunc  func(replyId domain.ReplyId, ownerId domain.UserId) error
	getReplyDetailsFunc   func(threadId domain.ThreadId, commentId domain.CommentId) ([]domain.DetailReply, error)
	deleteReplyByIdFunc   func(replyId domain.ReplyId, ownerId domain.UserId) error
}

func (m *MockReplyRepository) AddReply(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, reply domain.NewReply) (domain.CreatedReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ownerId, threadId, commentId, reply)
	}
	return domain.CreatedReply{Id: "reply-123", Content: reply.Content, Owner: ownerId}, nil
}

func (m *MockReplyRepository) VerifyReplyExists(replyId domain.ReplyId) error {
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(replyId)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyOwner(replyId domain.ReplyId, ownerId domain.UserId) error {
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, ownerId)
	}
	return nil
}

func (m *MockReplyRepository) GetReplyDetails(threadId domain.ThreadId, commentId domain.CommentId) ([]domain.DetailReply, error) {
	if m.getReplyDetailsFunc != nil {
		return m.getReplyDetailsFunc(threadId, commentId)
	}
	return nil, nil
}

func (m *MockReplyRepository) DeleteReplyById(replyId domain.ReplyId, ownerId domain.UserId) error {
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(replyId, ownerId)
	}
	return nil
}

type MockUserRepository struct {
	addUserFunc                 func(user domain.User) (domain.UserId, error)
	verifyAvailableUsernameFunc func(username domain.Username) error
	getPasswordByUsernameFunc   func(username domain.Username) (domain.Password, error)
	getIdByUsernameFunc         func(username domain.Username) (domain.UserId, error)
}

func (m *MockUserRepository) AddUser(user domain.User) (domain.UserId, error) {
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return "user-123", nil
}

func (m *MockUserRepository) VerifyAvailableUsername(username domain.Username) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) GetPasswordByUsername(username domain.Username) (domain.Password, error) {
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(username)
	}
	return "", nil
}

func (m *MockUserRepository) GetIdByUsername(username domain.Username) (domain.UserId, error) {
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(username)
	}
	return "user-123", nil
}

type MockAuthenticationRepository struct {
	addTokenFunc               func(token string) error
	checkAvailabilityTokenFunc func(token string) error
	deleteTokenFunc            func(token string) error
}

func (m *MockAuthenticationRepository) AddToken(token string) error {
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(token string) error {
	if m.checkAvailabilityTokenFunc != nil {
		return m.checkAvailabilityTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) DeleteToken(token string) error {
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

type MockJwt struct {
	newAccessTokenFunc  func(user domain.User) (string, error)
	newRefreshTokenFunc func(user domain.User) (string, error)
	decodeUserFunc      func(jwtStr string) (domain.User, error)
}

func (m *MockJwt) NewAccessToken(user domain.User) (string, error) {
	if m.newAccessTokenFunc != nil {
		return m.newAccessTokenFunc(user)
	}
	return "access-token", nil
}

func (m *MockJwt) NewRefreshToken(user domain.User) (string, error) {
	if m.newRefreshTokenFunc != nil {
		return m.newRefreshTokenFunc(user)
	}
	return "refresh-token", nil
}

func (m *MockJwt) DecodeUser(jwtStr string) (domain.User, error) {
	if m.decodeUserFunc != nil {
		return m.decodeUserFunc(jwtStr)
	}
	return domain.User{Id: "user-123", Username: "johndoe"}, nil
}

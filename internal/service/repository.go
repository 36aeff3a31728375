package service

import (
	"github.com/threadhub-dev/threadhub/internal/domain"
)

// Persistence contracts consumed by the services. pg.Storage implements all
// of them. Verify* methods fail with *errors.NotFoundError when the row is
// absent and, for owner checks, *errors.AuthorizationError when the caller
// does not own the row.

type ThreadRepository interface {
	AddThread(ownerId domain.UserId, thread domain.NewThread) (domain.CreatedThread, error)
	VerifyThreadExists(threadId domain.ThreadId) error
	GetThreadDetails(threadId domain.ThreadId) (domain.DetailThread, error)
}

type CommentRepository interface {
	AddComment(ownerId domain.UserId, threadId domain.ThreadId, comment domain.NewComment) (domain.CreatedComment, error)
	VerifyCommentExists(commentId domain.CommentId) error
	VerifyCommentOwner(commentId domain.CommentId, ownerId domain.UserId) error
	GetCommentDetails(threadId domain.ThreadId) ([]domain.DetailComment, error)
	DeleteCommentById(commentId domain.CommentId, ownerId domain.UserId) error
	AddLike(commentId domain.CommentId, ownerId domain.UserId) error
	DeleteLike(commentId domain.CommentId, ownerId domain.UserId) error
	IsLiked(commentId domain.CommentId, ownerId domain.UserId) (bool, error)
	GetCommentLikes(commentId domain.CommentId) (int, error)
}

type ReplyRepository interface {
	AddReply(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, reply domain.NewReply) (domain.CreatedReply, error)
	VerifyReplyExists(replyId domain.ReplyId) error
	VerifyReplyOwner(replyId domain.ReplyId, ownerId domain.UserId) error
	GetReplyDetails(threadId domain.ThreadId, commentId domain.CommentId) ([]domain.DetailReply, error)
	DeleteReplyById(replyId domain.ReplyId, ownerId domain.UserId) error
}

type UserRepository interface {
	AddUser(user domain.User) (domain.UserId, error)
	VerifyAvailableUsername(username domain.Username) error
	GetPasswordByUsername(username domain.Username) (domain.Password, error)
	GetIdByUsername(username domain.Username) (domain.UserId, error)
}

// AuthenticationRepository stores issued refresh tokens.
type AuthenticationRepository interface {
	AddToken(token string) error
	CheckAvailabilityToken(token string) error
	DeleteToken(token string) error
}

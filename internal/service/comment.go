package service

import (
	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/service/utils"
)

type CommentService interface {
	Create(ownerId domain.UserId, threadId domain.ThreadId, payload domain.NewCommentPayload) (domain.CreatedComment, error)
	Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
	ToggleLike(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
}

type Comment struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewComment(threads ThreadRepository, comments CommentRepository) *Comment {
	return &Comment{threads, comments}
}

func (s *Comment) Create(ownerId domain.UserId, threadId domain.ThreadId, payload domain.NewCommentPayload) (domain.CreatedComment, error) {
	comment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.CreatedComment{}, err
	}

	comment.Content = utils.SanitizeText(comment.Content)

	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return domain.CreatedComment{}, err
	}

	return s.comments.AddComment(ownerId, threadId, comment)
}

func (s *Comment) Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(commentId, ownerId); err != nil {
		return err
	}
	return s.comments.DeleteCommentById(commentId, ownerId)
}

// ToggleLike flips the like state of (ownerId, commentId): liked comments get
// unliked, unliked ones get liked. Two toggles are a no-op.
func (s *Comment) ToggleLike(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}

	liked, err := s.comments.IsLiked(commentId, ownerId)
	if err != nil {
		return err
	}
	if liked {
		return s.comments.DeleteLike(commentId, ownerId)
	}
	return s.comments.AddLike(commentId, ownerId)
}

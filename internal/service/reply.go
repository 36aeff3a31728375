package service

import (
	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/service/utils"
)

type ReplyService interface {
	Create(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error)
	Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

type Reply struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *Reply {
	return &Reply{threads, comments, replies}
}

func (s *Reply) Create(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, payload domain.NewReplyPayload) (domain.CreatedReply, error) {
	reply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.CreatedReply{}, err
	}

	reply.Content = utils.SanitizeText(reply.Content)

	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return domain.CreatedReply{}, err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return domain.CreatedReply{}, err
	}

	return s.replies.AddReply(ownerId, threadId, commentId, reply)
}

func (s *Reply) Delete(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(replyId, ownerId); err != nil {
		return err
	}
	return s.replies.DeleteReplyById(replyId, ownerId)
}

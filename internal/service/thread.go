package service

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/service/utils"
)

type ThreadService interface {
	Create(ownerId domain.UserId, payload domain.NewThreadPayload) (domain.CreatedThread, error)
	GetDetails(threadId domain.ThreadId) (domain.DetailThread, error)
}

type Thread struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *Thread {
	return &Thread{threads, comments, replies}
}

func (s *Thread) Create(ownerId domain.UserId, payload domain.NewThreadPayload) (domain.CreatedThread, error) {
	thread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.CreatedThread{}, err
	}

	thread.Title = utils.SanitizeText(thread.Title)
	thread.Body = utils.SanitizeText(thread.Body)

	return s.threads.AddThread(ownerId, thread)
}

// GetDetails assembles the full thread tree: the thread projection, its
// comments in chronological order, and per comment the replies plus the like
// count. Reply and like-count fetches run concurrently but each result is
// merged back into the comment it was requested for.
func (s *Thread) GetDetails(threadId domain.ThreadId) (domain.DetailThread, error) {
	thread, err := s.threads.GetThreadDetails(threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := s.comments.GetCommentDetails(threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	var g errgroup.Group
	for i := range comments {
		g.Go(func() error {
			replies, err := s.replies.GetReplyDetails(threadId, comments[i].Id)
			if err != nil {
				return fmt.Errorf("failed to fetch replies for %s: %w", comments[i].Id, err)
			}
			if replies == nil {
				replies = []domain.DetailReply{}
			}

			likes, err := s.comments.GetCommentLikes(comments[i].Id)
			if err != nil {
				return fmt.Errorf("failed to fetch like count for %s: %w", comments[i].Id, err)
			}

			comments[i].Replies = replies
			comments[i].LikeCount = likes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.DetailThread{}, err
	}

	if comments == nil {
		comments = []domain.DetailComment{}
	}
	thread.Comments = comments
	return thread, nil
}

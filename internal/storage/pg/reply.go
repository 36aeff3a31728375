package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

func (s *Storage) AddReply(ownerId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, reply domain.NewReply) (domain.CreatedReply, error) {
	var id, content, owner string
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, thread, comment, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, s.replyId(), reply.Content, threadId, commentId, ownerId).Scan(&id, &content, &owner)
	if err != nil {
		return domain.CreatedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	return domain.ParseCreatedReply(domain.CreatedReplyPayload{Id: id, Content: content, Owner: owner})
}

func (s *Storage) VerifyReplyExists(replyId domain.ReplyId) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM replies WHERE id = $1", replyId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "reply not found"}
		}
		return fmt.Errorf("failed to verify reply: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(replyId domain.ReplyId, ownerId domain.UserId) error {
	var id, owner string
	err := s.db.QueryRow("SELECT id, owner FROM replies WHERE id = $1", replyId).Scan(&id, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "reply not found"}
		}
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}

	if owner != ownerId {
		return &internal_errors.AuthorizationError{Message: "you are not allowed to access this resource"}
	}
	return nil
}

func (s *Storage) GetReplyDetails(threadId domain.ThreadId, commentId domain.CommentId) ([]domain.DetailReply, error) {
	rows, err := s.db.Query(`
        SELECT r.id, r.content, TO_CHAR(r.date, 'YYYY/MM/DD HH24:MI:SS') AS date, u.username, r.is_delete
        FROM replies r INNER JOIN users u ON r.owner = u.id
        WHERE r.thread = $1 AND r.comment = $2
        ORDER BY r.date
    `, threadId, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reply details: %w", err)
	}
	defer rows.Close()

	var replies []domain.DetailReply
	for rows.Next() {
		var id, content, date, username string
		var isDeleted bool
		if err := rows.Scan(&id, &content, &date, &username, &isDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply row: %w", err)
		}

		reply, err := domain.ParseDetailReply(domain.DetailReplyPayload{
			Id:        id,
			Content:   content,
			Date:      date,
			Username:  username,
			IsDeleted: isDeleted,
		})
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return replies, nil
}

// DeleteReplyById mirrors DeleteCommentById: soft delete scoped by id and
// owner, silent no-op on owner mismatch.
func (s *Storage) DeleteReplyById(replyId domain.ReplyId, ownerId domain.UserId) error {
	_, err := s.db.Exec("UPDATE replies SET is_delete = TRUE WHERE id = $1 AND owner = $2", replyId, ownerId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return nil
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

func (s *Storage) AddComment(ownerId domain.UserId, threadId domain.ThreadId, comment domain.NewComment) (domain.CreatedComment, error) {
	var id, content, owner string
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, thread, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.commentId(), comment.Content, threadId, ownerId).Scan(&id, &content, &owner)
	if err != nil {
		return domain.CreatedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.ParseCreatedComment(domain.CreatedCommentPayload{Id: id, Content: content, Owner: owner})
}

func (s *Storage) VerifyCommentExists(commentId domain.CommentId) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1", commentId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "comment not found"}
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(commentId domain.CommentId, ownerId domain.UserId) error {
	var id, owner string
	err := s.db.QueryRow("SELECT id, owner FROM comments WHERE id = $1", commentId).Scan(&id, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "comment not found"}
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}

	if owner != ownerId {
		return &internal_errors.AuthorizationError{Message: "you are not allowed to access this resource"}
	}
	return nil
}

func (s *Storage) GetCommentDetails(threadId domain.ThreadId) ([]domain.DetailComment, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, TO_CHAR(c.date, 'YYYY/MM/DD HH24:MI:SS') AS date, c.content, c.is_delete
        FROM comments c INNER JOIN users u ON c.owner = u.id
        WHERE c.thread = $1
        ORDER BY c.date
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment details: %w", err)
	}
	defer rows.Close()

	var comments []domain.DetailComment
	for rows.Next() {
		var id, username, date, content string
		var isDeleted bool
		if err := rows.Scan(&id, &username, &date, &content, &isDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}

		comment, err := domain.ParseDetailComment(domain.DetailCommentPayload{
			Id:        id,
			Username:  username,
			Date:      date,
			Content:   content,
			IsDeleted: isDeleted,
		})
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}

// DeleteCommentById flips the soft-delete flag. It is scoped by both id and
// owner: an owner mismatch affects zero rows and raises no error here, the
// caller must have verified ownership already.
func (s *Storage) DeleteCommentById(commentId domain.CommentId, ownerId domain.UserId) error {
	_, err := s.db.Exec("UPDATE comments SET is_delete = TRUE WHERE id = $1 AND owner = $2", commentId, ownerId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *Storage) AddLike(commentId domain.CommentId, ownerId domain.UserId) error {
	_, err := s.db.Exec("INSERT INTO likes (id, owner, comment) VALUES ($1, $2, $3)", s.likeId(), ownerId, commentId)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(commentId domain.CommentId, ownerId domain.UserId) error {
	_, err := s.db.Exec("DELETE FROM likes WHERE owner = $1 AND comment = $2", ownerId, commentId)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) IsLiked(commentId domain.CommentId, ownerId domain.UserId) (bool, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM likes WHERE owner = $1 AND comment = $2", ownerId, commentId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return true, nil
}

func (s *Storage) GetCommentLikes(commentId domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(owner) FROM likes WHERE comment = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

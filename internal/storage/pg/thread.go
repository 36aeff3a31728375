package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

func (s *Storage) AddThread(ownerId domain.UserId, thread domain.NewThread) (domain.CreatedThread, error) {
	var id, title, owner string
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, s.threadId(), thread.Title, thread.Body, ownerId).Scan(&id, &title, &owner)
	if err != nil {
		return domain.CreatedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.ParseCreatedThread(domain.CreatedThreadPayload{Id: id, Title: title, Owner: owner})
}

func (s *Storage) VerifyThreadExists(threadId domain.ThreadId) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "thread not found"}
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadDetails(threadId domain.ThreadId) (domain.DetailThread, error) {
	var id, title, body, date, username string
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, TO_CHAR(t.date, 'YYYY/MM/DD HH24:MI:SS') AS date, u.username
        FROM threads t INNER JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, threadId).Scan(&id, &title, &body, &date, &username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DetailThread{}, &internal_errors.NotFoundError{Message: "thread not found"}
		}
		return domain.DetailThread{}, fmt.Errorf("failed to fetch thread details: %w", err)
	}

	return domain.ParseDetailThread(domain.DetailThreadPayload{Id: id, Title: title, Body: body, Date: date, Username: username})
}

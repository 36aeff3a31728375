package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

func (s *Storage) AddUser(user domain.User) (domain.UserId, error) {
	var id string
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, s.userId(), user.Username, user.Password, user.Fullname).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) VerifyAvailableUsername(username domain.Username) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check username availability: %w", err)
	}
	return &internal_errors.ErrorWithStatusCode{Message: "username not available", StatusCode: http.StatusBadRequest}
}

func (s *Storage) GetPasswordByUsername(username domain.Username) (domain.Password, error) {
	var password string
	err := s.db.QueryRow("SELECT password FROM users WHERE username = $1", username).Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.NotFoundError{Message: "username not found"}
		}
		return "", fmt.Errorf("failed to fetch password: %w", err)
	}
	return password, nil
}

func (s *Storage) GetIdByUsername(username domain.Username) (domain.UserId, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.NotFoundError{Message: "username not found"}
		}
		return "", fmt.Errorf("failed to fetch user id: %w", err)
	}
	return id, nil
}

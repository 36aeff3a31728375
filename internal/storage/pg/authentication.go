package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

func (s *Storage) AddToken(token string) error {
	if _, err := s.db.Exec("INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(token string) error {
	var stored string
	err := s.db.QueryRow("SELECT token FROM authentications WHERE token = $1", token).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.ErrorWithStatusCode{Message: "refresh token not found", StatusCode: http.StatusBadRequest}
		}
		return fmt.Errorf("failed to check refresh token: %w", err)
	}
	return nil
}

func (s *Storage) DeleteToken(token string) error {
	if _, err := s.db.Exec("DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/logger"
)

// Storage implements every repository contract consumed by the services.
// Row ids are opaque strings with a domain prefix ("thread-", "comment-",
// "reply-", "likes-", "user-") followed by a generated suffix.
type Storage struct {
	db    *sql.DB
	newId func() string
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, newId: uuid.NewString}, nil
}

// NewWithIdGenerator is used by tests that need predictable ids.
func NewWithIdGenerator(db *sql.DB, newId func() string) *Storage {
	return &Storage{db: db, newId: newId}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port, cfg.Public.Pg.User, cfg.Private.PgPassword, cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) threadId() string {
	return "thread-" + s.newId()
}

func (s *Storage) commentId() string {
	return "comment-" + s.newId()
}

func (s *Storage) replyId() string {
	return "reply-" + s.newId()
}

func (s *Storage) likeId() string {
	return "likes-" + s.newId()
}

func (s *Storage) userId() string {
	return "user-" + s.newId()
}

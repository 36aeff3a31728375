package setup

import (
	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/handler"
	"github.com/threadhub-dev/threadhub/internal/jwt"
	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/service"
	"github.com/threadhub-dev/threadhub/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.TokenService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.Public.AccessTokenTTL, cfg.Public.RefreshTokenTTL)

	auth := service.NewAuth(storage, storage, tokens)
	thread := service.NewThread(storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)

	h := handler.New(auth, thread, comment, reply, storage, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            tokens,
		AuthMiddleware: middleware.NewAuth(tokens),
	}, nil
}

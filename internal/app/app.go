package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/beautyauthsvc/internal/config"
	httpx "github.com/you/beautyauthsvc/internal/http"
	"github.com/you/beautyauthsvc/internal/http/handlers"
	"github.com/you/beautyauthsvc/internal/http/middleware"
	"github.com/you/beautyauthsvc/pkg/log"
)

func Run(cfg *config.Config) error {
	logger := log.New(cfg.GinMode)
	gin.SetMode(cfg.GinMode)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		// The cache is an optimization; start anyway and let reads fall
		// through to the database.
		logger.Warn().Err(err).Msg("redis unreachable, profile cache disabled")
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	profileH := handlers.NewProfileHandlers(container.ProfileSvc)
	jwtMW := middleware.NewAuthMW(container.TokenSvc)

	r := httpx.BuildRouter(authH, profileH, jwtMW)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}

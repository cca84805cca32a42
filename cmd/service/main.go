package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lernora/conversation-service/internal/client/centrifugo"
	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/infra"
	"github.com/lernora/conversation-service/internal/pkg/jwt"
	"github.com/lernora/conversation-service/internal/pkg/tx"
	"github.com/lernora/conversation-service/internal/pkg/validator"
	"github.com/lernora/conversation-service/internal/presence"
	db "github.com/lernora/conversation-service/internal/repository/postgres"
	"github.com/lernora/conversation-service/internal/rest"
	"github.com/lernora/conversation-service/internal/service/conversation"
	"github.com/lernora/conversation-service/internal/service/moderation"
	"github.com/lernora/conversation-service/internal/service/reaction"
	"github.com/lernora/conversation-service/internal/service/realtime"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	var presenceRegistry realtime.PresenceRegistry
	if cfg.Redis.Host != "" {
		redisRegistry := presence.NewRedisRegistry(cfg)
		defer redisRegistry.Close()
		presenceRegistry = redisRegistry
	} else {
		presenceRegistry = presence.NewMemoryRegistry()
	}

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret, cfg.Centrifuge.TokenTTL)

	convStore := conversation.New(dbRepo)
	reactionLedger := reaction.New(dbRepo)
	moderationService := moderation.New(dbRepo)
	dispatcher := realtime.New(convStore, reactionLedger, moderationService, presenceRegistry, centrifugeClient, vldtr)

	handler := rest.New(convStore, moderationService, dispatcher, vldtr, jwtGenerator, dbRepo)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(tx.TxMiddlewareHTTP(dbRepo))

		handler.AttachAPIRoutes(r)
	})
	router.Route("/internal/centrifugo", func(r chi.Router) {
		r.Use(infra.ProxyAuthHTTP(cfg.Centrifuge.ProxySecret))
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(tx.TxMiddlewareHTTP(dbRepo))

		handler.AttachProxyRoutes(r)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

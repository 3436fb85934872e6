package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/hexconnect-backend/internal/config"
	"github.com/rocketscienceinc/hexconnect-backend/internal/metrics"
	"github.com/rocketscienceinc/hexconnect-backend/internal/repository"
	"github.com/rocketscienceinc/hexconnect-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hexconnect-backend/internal/usecase"
	"github.com/rocketscienceinc/hexconnect-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const liveSessionsInterval = 15 * time.Second

// RunApp - runs the application: connects storage, wires the session
// manager and serves the operational HTTP endpoints until a signal arrives.
// Gameplay transports are intentionally absent; embedders consume the
// session manager directly.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)
	sessionManager := usecase.NewSessionManager(logger, sessionRepo, conf.Game.DefaultBoardSize)

	log.Info("Session manager ready", "default_board_size", conf.Game.DefaultBoardSize)

	go reportLiveSessions(ctx, sessionManager)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// reportLiveSessions keeps the live-sessions gauge current.
func reportLiveSessions(ctx context.Context, sessionManager *usecase.SessionManager) {
	ticker := time.NewTicker(liveSessionsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.LiveSessions.Set(float64(sessionManager.LiveSessions()))
		}
	}
}

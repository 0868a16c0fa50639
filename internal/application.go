package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/othello-backend/internal/agent"
	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/repository/storage"
	"github.com/rocketscienceinc/othello-backend/internal/statistics"
	"github.com/rocketscienceinc/othello-backend/internal/usecase"
	"github.com/rocketscienceinc/othello-backend/internal/worker"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs a headless session until it is over or the process is signalled.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	black, white, err := conf.Session.Seats()
	if err != nil {
		return fmt.Errorf("invalid session config: %w", err)
	}

	var statsRepo repository.StatisticsRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		statsRepo = repository.NewStatisticsRepository(redisStorage.Connection)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Starting session", "seed", seed, "black", black.Descriptor(), "white", white.Descriptor())

	moveWorker := worker.New(logger, agent.New(rand.New(rand.NewSource(seed)))) //nolint: gosec // game AI
	gameManager := usecase.NewGameManager(logger, usecase.Options{
		Pacing:         conf.Session.Pacing,
		PauseAtWin:     conf.Session.PauseAtWin,
		AutoRestart:    conf.Session.AutoRestart,
		TakeStatistics: conf.Session.TakeStatistics,
		MaxGames:       conf.Session.MaxGames,
	}, black, white, moveWorker, statistics.New(), statsRepo)

	group, groupCtx := errgroup.WithContext(ctx)

	// the worker lives as long as the session
	group.Go(func() error {
		return moveWorker.Run(groupCtx)
	})

	group.Go(func() error {
		defer cancel()

		if err := gameManager.Run(groupCtx); err != nil {
			return fmt.Errorf("game session failed: %w", err)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Session finished", "games", gameManager.FinishedGames())

	return nil
}

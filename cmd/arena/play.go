package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-arena/internal/config"
	"github.com/KirkDiggler/battle-arena/internal/engine"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/orchestrators/game"
	"github.com/KirkDiggler/battle-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/battle-arena/internal/prompt"
	"github.com/KirkDiggler/battle-arena/internal/redis"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

var (
	saveBackend string
	savePath    string
	redisAddr   string
	saveSlot    string
	logLevel    string
	redisTLS    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	Long: `Start an interactive game on the terminal.

Settings are read from ARENA_* environment variables; flags override them.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&saveBackend, "save-backend", config.SaveBackendFile, "where games are saved (file or redis)")
	playCmd.Flags().StringVar(&savePath, "save-path", "save.txt", "save file path for the file backend")
	playCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address for the redis backend")
	playCmd.Flags().StringVar(&saveSlot, "save-slot", "default", "save slot for the redis backend")
	playCmd.Flags().BoolVar(&redisTLS, "redis-tls", false, "connect to redis over TLS")
	playCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			slog.Info("Received shutdown signal, ending game")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// game text owns stdout
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	saveRepo, closeRepo, err := newSaveRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	orchestrator, err := newGame(cfg, saveRepo, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	err = orchestrator.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.IsUnavailable(err), errors.IsCanceled(err):
		// input closed or interrupted
		slog.Info("Game ended early", "error", err)
		return nil
	default:
		return err
	}
}

// loadConfig reads the environment, then applies flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("save-backend") {
		cfg.SaveBackend = saveBackend
	}
	if flags.Changed("save-path") {
		cfg.SavePath = savePath
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("save-slot") {
		cfg.SaveSlot = saveSlot
	}
	if flags.Changed("redis-tls") {
		cfg.RedisTLS = redisTLS
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newSaveRepository(cfg *config.Config) (savegame.Repository, func(), error) {
	switch cfg.SaveBackend {
	case config.SaveBackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize: cfg.RedisPoolSize,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}

		repo, err := savegame.NewRedis(&savegame.RedisConfig{
			Client: client,
			Slot:   cfg.SaveSlot,
		})
		if err != nil {
			_ = client.Close() // nolint:errcheck
			return nil, nil, err
		}

		closeClient := func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}
		return repo, closeClient, nil
	default:
		repo, err := savegame.NewFile(&savegame.FileConfig{Path: cfg.SavePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func newGame(cfg *config.Config, saveRepo savegame.Repository, in io.Reader, out io.Writer) (game.Service, error) {
	console, err := prompt.NewConsole(&prompt.ConsoleConfig{In: in, Out: out})
	if err != nil {
		return nil, err
	}

	eventBus := events.NewBus()

	combatEngine, err := engine.New(&engine.Config{EventBus: eventBus})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat engine")
	}

	orchestrator, err := game.NewOrchestrator(&game.Config{
		Prompter:    console,
		SaveRepo:    saveRepo,
		Engine:      combatEngine,
		EventBus:    eventBus,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}

	slog.Debug("Game created",
		"save_backend", cfg.SaveBackend,
		"log_level", cfg.LogLevel,
	)

	return orchestrator, nil
}

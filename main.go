package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/smartscale/internal/auth"
	"github.com/example/smartscale/internal/config"
	"github.com/example/smartscale/internal/grpcclient"
	"github.com/example/smartscale/internal/handlers"
	"github.com/example/smartscale/internal/logging"
	"github.com/example/smartscale/internal/pricing"
	"github.com/example/smartscale/internal/repository"
	"github.com/example/smartscale/internal/usecase"
	"github.com/example/smartscale/internal/weight"
)

const appName = "AI-Powered Shop Scale"

var (
	version = "1.0.0"
	cfgFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smartscale",
		Short:         "Produce scale API: classify, weigh, price and record sales",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the default product catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	})
	return root
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runMigrate(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	db, err := initDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	_, err = prepareStore(ctx, db, logger)
	return err
}

func runServe(parent context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	db, err := initDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	store, err := prepareStore(ctx, db, logger)
	if err != nil {
		return err
	}

	var cache usecase.Cache = usecase.NoopCache{}
	if cfg.Redis.Addr != "" {
		redisCtx, redisCancel := context.WithTimeout(ctx, 5*time.Second)
		redisClient, err := initRedis(redisCtx, cfg.Redis, logger)
		redisCancel()
		if err != nil {
			return err
		}
		defer redisClient.Close()
		cache = usecase.NewRedisCache(redisClient)
	} else {
		logger.Info("redis address not set, caching disabled")
	}

	client, conn, err := grpcclient.DialClassifier(ctx, cfg.Classifier.Addr, cfg.Classifier.DialTimeout, logger)
	if err != nil {
		return fmt.Errorf("connect to classifier: %w", err)
	}
	defer conn.Close()

	estimator := weight.NewEstimator(weight.DefaultTable(),
		weight.WithVariation(cfg.Weight.VariationFactor),
		weight.WithRandomSource(randomSource(cfg.Weight.Seed)),
	)

	uc := usecase.NewScaleUseCase(store, cache, client, estimator, pricing.NewCalculator(), logger,
		usecase.WithTopK(cfg.Classifier.TopK),
		usecase.WithCacheTTL(cfg.Redis.TTL),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.MaxMultipartMemory = cfg.HTTP.MaxUploadBytes

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.JWTSecret != "" {
		authMiddleware = auth.JWTMiddleware(cfg.Auth.JWTSecret, cfg.Auth.JWTAudience)
	} else {
		logger.Warn("auth.jwt_secret not set, transaction writes are unauthenticated")
	}

	handlers.RegisterRoutes(r, uc, logger, authMiddleware, handlers.Config{
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		AppName:        appName,
		Version:        version,
		ExposeMetrics:  cfg.Metrics.Enabled,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("smartscale API listening", zap.String("addr", cfg.HTTP.Addr), zap.String("version", version))
	if err := serveHTTPServer(server, cfg.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}

func initDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := repository.Open(ctx, repository.Options{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err), zap.String("driver", cfg.Driver))
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("failed to close database", zap.Error(err))
	}
}

func prepareStore(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*repository.Store, error) {
	store := repository.NewStore(db, logger)
	if err := store.AutoMigrate(ctx); err != nil {
		logger.Error("auto migrate failed", zap.Error(err))
		return nil, err
	}
	if _, err := store.SeedDefaults(ctx); err != nil {
		logger.Error("seeding product catalogue failed", zap.Error(err))
		return nil, err
	}
	return store, nil
}

func initRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis connection failed", zap.Error(err), zap.String("addr", cfg.Addr))
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func randomSource(seed uint64) weight.RandomSource {
	if seed == 0 {
		return weight.NewTimeSource()
	}
	return weight.NewSeededSource(seed)
}

func serveHTTPServer(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, nil, nil)
}

func serveHTTPServerWithOptions(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener, signalCh <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if listener != nil {
			err = server.Serve(listener)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var (
		sigCh       <-chan os.Signal
		stopSignals func()
	)

	if signalCh != nil {
		sigCh = signalCh
		stopSignals = func() {}
	} else {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		sigCh = ch
		stopSignals = func() {
			signal.Stop(ch)
		}
	}
	defer stopSignals()

	select {
	case err := <-errCh:
		return err
	case sig, ok := <-sigCh:
		if !ok {
			return <-errCh
		}
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	}
}

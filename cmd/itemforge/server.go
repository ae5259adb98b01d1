package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/config"
	"github.com/KirkDiggler/itemforge/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/handlers/rest"
	"github.com/KirkDiggler/itemforge/internal/loader"
	"github.com/KirkDiggler/itemforge/internal/logger"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
)

const shutdownTimeout = 30 * time.Second

var (
	envFile   string
	grpcPort  int
	httpPort  int
	redisAddr string
	seedDir   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the itemforge servers. Settings come from ITEMFORGE_* environment
variables, optionally loaded from an env file; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Env file to load when present")
	serverCmd.Flags().IntVar(&grpcPort, "port", config.DefaultGRPCPort, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", config.DefaultHTTPPort, "HTTP server port, 0 disables it")
	serverCmd.Flags().StringVar(&redisAddr, "redis", config.DefaultRedisAddr, `Redis address, or "embedded"`)
	serverCmd.Flags().StringVar(&seedDir, "seed-dir", "", "Directory of YAML templates to load at startup")
}

func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("seed-dir") {
		cfg.SeedDir = seedDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "itemforge",
		Environment: cfg.Environment,
	})

	redisClient, closeRedis, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis()

	m := metrics.New(prometheus.DefaultRegisterer)

	forgeService, err := newForgeService(redisClient, cfg, m)
	if err != nil {
		return err
	}

	if cfg.SeedDir != "" {
		seeds, err := loader.LoadDir(cfg.SeedDir)
		if err != nil {
			return fmt.Errorf("failed to load seed templates: %w", err)
		}
		if _, err := loader.Sync(ctx, forgeService, seeds); err != nil {
			return err
		}
	}

	// everything that can fail is built before either server starts
	forgeHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ForgeService: forgeService,
	})
	if err != nil {
		return fmt.Errorf("failed to create forge handler: %w", err)
	}

	httpServer, err := newHTTPServer(cfg, forgeService, m)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	forgev1alpha1.RegisterForgeServiceServer(srv, forgeHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(forgev1alpha1.ForgeServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()

	if httpServer != nil {
		go func() {
			slog.Info("HTTP server starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("failed to serve http: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers...")
	case err := <-errChan:
		srv.Stop()
		if httpServer != nil {
			_ = httpServer.Close() // nolint:errcheck // already failing
		}
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown incomplete", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

// newHTTPServer returns nil when the HTTP port is 0
func newHTTPServer(cfg *config.Config, svc forge.Service, m *metrics.Metrics) (*http.Server, error) {
	if cfg.HTTPPort == 0 {
		return nil, nil
	}

	router, err := rest.NewRouter(&rest.Config{
		ForgeService: svc,
		Gatherer:     prometheus.DefaultGatherer,
		Metrics:      m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create http router: %w", err)
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

// cmd/server/main.go
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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/config"
	"github.com/gurkanbulca/kanban/internal/handler"
	"github.com/gurkanbulca/kanban/internal/middleware"
	"github.com/gurkanbulca/kanban/internal/repository"
	"github.com/gurkanbulca/kanban/internal/service"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := config.NewLogger(cfg.Log, os.Stderr)
	if envErr != nil {
		logger.Debug().Msg("No .env file found")
	}

	ctx := context.Background()

	slot, err := repository.OpenSlot(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("Failed to open storage")
	}
	defer func() {
		if err := slot.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	store := board.Open(ctx, slot, board.WithLogger(logger.With().Str("component", "board").Logger()))

	// Initialize middleware
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	validationInterceptor := middleware.NewValidationInterceptor(cfg.ToValidationConfig())
	loggingInterceptor := middleware.NewLoggingInterceptor(logger.With().Str("component", "grpc").Logger())

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			loggingInterceptor.Unary(),
			validationInterceptor.Unary(),
		),
	)

	kanbanv1.RegisterKanbanServiceServer(grpcServer, service.NewBoardService(store))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(kanbanv1.KanbanService_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		logger.Info().Msg("gRPC reflection enabled (disable in production)")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to listen")
	}

	httpHandler := handler.NewBoardHandler(store, validationInterceptor, logger)
	e := handler.NewServer(httpHandler, logger.With().Str("component", "http").Logger())

	go func() {
		logger.Info().Str("port", cfg.Server.GRPCPort).Msg("Kanban gRPC server listening")
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("Failed to serve gRPC")
		}
	}()

	go func() {
		logger.Info().Str("port", cfg.Server.HTTPPort).Msg("Kanban HTTP server listening")
		if err := e.Start(fmt.Sprintf(":%s", cfg.Server.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to serve HTTP")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown failed")
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	logger.Info().Msg("Server shutdown complete")
}

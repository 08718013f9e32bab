package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/todo/config"
	"github.com/example/todo/server"
	"github.com/example/todo/service"
	"github.com/example/todo/storage"

	// storage drivers register themselves
	_ "github.com/example/todo/storage/bolt"
	_ "github.com/example/todo/storage/dynamodb"
	_ "github.com/example/todo/storage/memory"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)

	if err != nil {
		// no logger yet
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := buildLogger(cfg)
	defer logger.Sync()

	ctx := context.Background()

	repository, err := storage.Open(ctx, cfg.Storage, storage.Options{
		TableName: cfg.DynamoDB.TableName,
		Endpoint:  cfg.DynamoDB.Endpoint,
		Region:    cfg.DynamoDB.Region,
		Path:      cfg.Bolt.Path,
	})

	if err != nil {
		logger.Fatal("could not open storage", zap.String("driver", cfg.Storage), zap.Error(err))
	}

	defer repository.Close()

	todos := service.New(repository)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.NewRESTHandler(todos, logger),
	}

	grpcServer := server.NewGRPC(todos, logger)

	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)

	if err != nil {
		logger.Fatal("could not listen for gRPC", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	errs := make(chan error, 2)

	go func() {
		logger.Info("serving REST", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.Storage))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	go func() {
		logger.Info("serving gRPC", zap.String("addr", cfg.GRPCAddr))

		if err := grpcServer.Listen(grpcListener); err != nil {
			errs <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errs:
		logger.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("could not drain http server", zap.Error(err))
	}

	grpcServer.Stop()
}

func buildLogger(cfg config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error

	if cfg.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		os.Stderr.WriteString("could not build logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	return logger
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/skylineair/edge-services/internal/app/config"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/endpoints"
	"github.com/skylineair/edge-services/internal/app/service"
	"github.com/skylineair/edge-services/internal/app/transport"
	"github.com/skylineair/edge-services/internal/pkg/logger"
	"github.com/skylineair/edge-services/internal/pkg/pnrstore"
	"github.com/skylineair/edge-services/internal/pkg/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger("login", cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting login service...", slog.String("log_level", string(cfg.LogLevel)))

	mongoClient := mustConnectPnrDB(ctx, cfg)

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("failed to disconnect from the PNR database", slog.String("error", err.Error()))
		}
	}()

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, mongoClient)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func mustConnectPnrDB(ctx context.Context, cfg config.Config) *mongo.Client {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Login.PnrDBTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Login.PnrDBURL))
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to the PNR database", slog.String("error", err.Error()))
		panic(err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		slog.ErrorContext(ctx, "failed to ping the PNR database", slog.String("error", err.Error()))
		panic(err)
	}

	return client
}

func startHTTPServer(ctx context.Context, cfg config.Config, mongoClient *mongo.Client) {
	endpts := makeEndpoints(ctx, &cfg, mongoClient)
	router := transport.MakeLoginHTTPRouter(endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, mongoClient *mongo.Client) endpoints.LoginEndpoint {
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	collection := mongoClient.
		Database(cfg.Login.PnrDBName).
		Collection(cfg.Login.PnrDBCollectionName)

	repository := pnrstore.NewRepository(collection, cfg.Login.PnrDBTimeout)
	issuer := token.NewIssuer(cfg.Login.AccessTokenSecret)

	loginService := service.NewLoginService(repository, issuer)

	return endpoints.MakeLoginEndpoint(loginService)
}
